package config

import (
	"fmt"
	"log"

	"github.com/spf13/afero"
)

// Initialize writes a default configuration into the given directory,
// refusing to overwrite an existing one.
func Initialize(path string, logger *log.Logger) error {
	return InitializeFs(afero.NewOsFs(), path, logger)
}

// InitializeFs is Initialize over an arbitrary filesystem.
func InitializeFs(fs afero.Fs, path string, logger *log.Logger) error {
	if err := fs.MkdirAll(path, 0700); err != nil {
		return err
	}
	configFs := afero.NewBasePathFs(fs, path)

	exists, err := afero.Exists(configFs, ConfigurationName)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s already exists in %q", ConfigurationName, path)
	}

	logger.Printf("writing %s", ConfigurationName)
	if err := afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600); err != nil {
		return err
	}

	logger.Printf("done, customize %s to taste", ConfigurationName)
	return nil
}
