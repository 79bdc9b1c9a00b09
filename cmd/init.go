package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"dropshell/core/config"
)

// initCmd materializes a default configuration directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration to the config path.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.OutOrStdout(), "", 0)
		return config.Initialize(cfgPath, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
