package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithViper_Defaults(t *testing.T) {
	// Run from a directory without a config file
	requireChdir(t, t.TempDir())

	cfg, v, err := LoadWithViper()

	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, DefaultConstantsPath, cfg.Input.ConstantsPath)
	assert.Equal(t, DefaultScoringFile, cfg.Input.ScoringFile)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
}

func TestLoadWithViper_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
input:
  constants_path: src/constants.ts
  scoring_file: scores.ts
output:
  format: yaml
logging:
  level: debug
`
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	requireChdir(t, dir)

	cfg, _, err := LoadWithViper()

	require.NoError(t, err)
	assert.Equal(t, "src/constants.ts", cfg.Input.ConstantsPath)
	assert.Equal(t, "scores.ts", cfg.Input.ScoringFile)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadWithViper_Environment(t *testing.T) {
	requireChdir(t, t.TempDir())
	t.Setenv("CLUTTERSCAN_OUTPUT_FORMAT", "yaml")
	t.Setenv("CLUTTERSCAN_INPUT_SCORING_FILE", "alt.ts")

	cfg, _, err := LoadWithViper()

	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "alt.ts", cfg.Input.ScoringFile)
}

func TestValidate_InvalidFormat(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Format: "xml"}}

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestValidate_FillsDefaults(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()

	require.NoError(t, err)
	assert.Equal(t, DefaultConstantsPath, cfg.Input.ConstantsPath)
	assert.Equal(t, DefaultScoringFile, cfg.Input.ScoringFile)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func TestValidate_UnknownLogLevelFallsBack(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "loud"}}

	err := cfg.Validate()

	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

// requireChdir moves the test into dir and points HOME there so a
// developer's real ~/.clutterscan/config.yaml cannot leak in.
func requireChdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	t.Setenv("HOME", dir)
}
