package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Settings are the user-tunable values, resolved from defaults, config file
// and COMBOS_* environment variables, in increasing priority.
type Settings struct {
	// StorePath is the combinations document location
	StorePath string `mapstructure:"store_path"`

	// DocumentPath is the project document location
	DocumentPath string `mapstructure:"document_path"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`
}

// LoadSettings resolves Settings for the given paths. configFile overrides
// paths.Config; an explicit file must exist, the default one may be absent.
func LoadSettings(paths *Paths, configFile string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("store_path", paths.Store)
	v.SetDefault("document_path", paths.Document)
	v.SetDefault("log_level", "info")
	v.SetEnvPrefix("COMBOS")
	v.AutomaticEnv()

	file := configFile
	if file == "" {
		file = paths.Config
		if _, err := os.Stat(file); err != nil {
			file = ""
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	return &s, nil
}
