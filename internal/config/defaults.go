package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Input defaults
	DefaultConstantsPath = "tmp/defuddle/src/constants.ts"
	DefaultScoringFile   = "scoring.ts"

	// Output defaults
	DefaultOutputFormat = "json"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clutterscan"
	}
	return filepath.Join(home, ".clutterscan")
}
