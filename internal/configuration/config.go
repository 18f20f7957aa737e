package configuration

import (
	"fmt"
	"os"
	"time"

	"github.com/markusressel/plant2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	DbPath string `json:"dbPath"`

	// CycleInterval is the time between two monitoring cycles
	CycleInterval time.Duration `json:"cycleInterval"`
	// Cycles limits the number of cycles run by the daemon, 0 means unlimited
	Cycles int `json:"cycles"`
	// FlushInterval is the time between two flushes of the event log to the database
	FlushInterval time.Duration `json:"flushInterval"`

	// Targets overrides route targets by sensor kind
	Targets []TargetConfig `json:"targets"`

	Log          LogConfig          `json:"log"`
	Notification NotificationConfig `json:"notification"`
	Statistics   StatisticsConfig   `json:"statistics"`
	Api          ApiConfig          `json:"api"`

	Sensors   []SensorConfig   `json:"sensors"`
	Actuators []ActuatorConfig `json:"actuators"`
	Routes    []RouteConfig    `json:"routes"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("plant2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/plant2go/")
	}

	viper.SetEnvPrefix("plant2go")
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("dbPath", "/var/lib/plant2go/plant2go.db")
	viper.SetDefault("cycleInterval", 1*time.Second)
	viper.SetDefault("cycles", 0)
	viper.SetDefault("flushInterval", 10*time.Second)

	viper.SetDefault("log.path", "")
	viper.SetDefault("log.mode", LogModeOverwrite)

	viper.SetDefault("notification.console", true)
	viper.SetDefault("notification.desktop", false)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)
}

// ReadConfigFile reads the config file detected by InitConfig and returns its path
func ReadConfigFile() (string, error) {
	if err := viper.ReadInConfig(); err != nil {
		return "", err
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed(), nil
}

// DetectAndReadConfigFile reads the config file and exits if there is none
func DetectAndReadConfigFile() string {
	path, err := ReadConfigFile()
	if err != nil {
		// config file is required, so we fail here
		ui.FatalWithoutStacktrace("Error reading config file, %s", err)
	}
	return path
}

// LoadConfig decodes the values read by viper into CurrentConfig
func LoadConfig() {
	if err := UnmarshalConfig(&CurrentConfig); err != nil {
		ui.FatalWithoutStacktrace("unable to decode into struct, %v", err)
	}
}

func UnmarshalConfig(config *Configuration) error {
	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			logModeHookFunc(),
		),
	))
	if err != nil {
		return fmt.Errorf("decode configuration: %w", err)
	}
	return nil
}
