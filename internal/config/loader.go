package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	return loadWith(viper.GetViper())
}

// LoadWithViper loads configuration into a fresh viper instance,
// ignoring any global flag bindings. Useful for tests.
func LoadWithViper() (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := loadWith(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func loadWith(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (CLUTTERSCAN_*)
	v.SetEnvPrefix("CLUTTERSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.constants_path", DefaultConstantsPath)
	v.SetDefault("input.scoring_file", DefaultScoringFile)
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("output.path", "")
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
