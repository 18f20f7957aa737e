package global

import (
	"errors"

	"github.com/markusressel/plant2go/internal/configuration"
	"github.com/markusressel/plant2go/internal/ui"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)

// LoadConfig reads, decodes and validates the configuration and exits on any error.
// If optional is true, a missing config file is not an error and the defaults are used.
func LoadConfig(optional bool) {
	if optional {
		configPath, err := configuration.ReadConfigFile()
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			ui.Info("No configuration file found, using defaults")
		case err != nil:
			ui.FatalWithoutStacktrace("Error reading config file, %s", err)
		default:
			ui.Info("Using configuration file at: %s", configPath)
		}
	} else {
		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
	}

	configuration.LoadConfig()
	if configuration.ApplyDefaultPlant(&configuration.CurrentConfig) {
		ui.Info("No plant configured, using the reference plant")
	}

	if err := configuration.Validate(); err != nil {
		ui.FatalWithoutStacktrace("Config Validation Error: %v", err)
	}
}
