package config

import "fmt"

// Config represents the application configuration
type Config struct {
	Input   InputConfig   `mapstructure:"input" yaml:"input"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// InputConfig contains input file settings
type InputConfig struct {
	// ConstantsPath is used when no positional argument is given.
	ConstantsPath string `mapstructure:"constants_path" yaml:"constants_path"`
	// ScoringFile is the sibling filename read next to the constants file.
	ScoringFile string `mapstructure:"scoring_file" yaml:"scoring_file"`
}

// OutputConfig contains manifest output settings
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "json" or "yaml"
	Path   string `mapstructure:"path" yaml:"path"`     // empty means stdout
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, falling back to defaults for
// values that would otherwise break the run.
func (c *Config) Validate() error {
	if c.Input.ConstantsPath == "" {
		c.Input.ConstantsPath = DefaultConstantsPath
	}
	if c.Input.ScoringFile == "" {
		c.Input.ScoringFile = DefaultScoringFile
	}

	switch c.Output.Format {
	case "":
		c.Output.Format = DefaultOutputFormat
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q (use json or yaml)", c.Output.Format)
	}

	switch c.Logging.Level {
	case "":
		c.Logging.Level = DefaultLogLevel
	case "debug", "info", "warn", "error":
	default:
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	return nil
}
