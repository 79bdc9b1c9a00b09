package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"

	"github.com/spf13/cobra"

	"dropshell/core"
	"dropshell/core/config"
)

var cfgPath string

// loadConfig reads the configuration directory, falling back to the built-in
// defaults when none has been initialized yet.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("No config found, using defaults. Run `dropshell init` to create one.")
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dropshell",
	Short: "A small interactive Unix command shell",
	Long: `An interactive command shell with builtins, two-stage pipelines,
background execution and '!!' history recall.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		// Engine events go to the config-owned app log; if it can't be
		// opened the events land on stderr instead.
		logWriter := io.Writer(cmd.ErrOrStderr())
		if fd, err := configuration.OpenAppLog(); err == nil {
			defer fd.Close()
			logWriter = fd
		}
		logger := log.New(logWriter, "", log.LstdFlags)

		shell := core.NewShell(configuration, logger)
		return shell.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
