package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "app.log"
)

// Configuration holds the user-tunable knobs of the shell. The input
// ceilings are deliberate configuration rather than hidden capacities:
// input beyond them is truncated, not rejected.
type Configuration struct {
	configFs afero.Fs

	// Prompt is printed before each read, without a trailing newline.
	Prompt string `json:"prompt" validate:"required"`

	// Motd is printed once at startup when non-empty.
	Motd string `json:"motd"`

	// MaxArgs caps the number of tokens kept per command line.
	MaxArgs int `json:"max_args" validate:"gte=1"`

	// MaxLine caps the length in bytes of one input line.
	MaxLine int `json:"max_line" validate:"gte=1"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		// Configurations that were never loaded from disk, e.g. the
		// built-in default, keep their files in memory.
		c.configFs = afero.NewMemMapFs()
	}
	return c.configFs
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		// The embedded default must always parse.
		panic(err)
	}
	return &out
}
