package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	log.Info().Str("key", "value").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"message":"hello"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{
		Level:  "warn",
		Format: "json",
		Output: &buf,
	})

	log.Info().Msg("filtered")
	log.Warn().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "filtered")
	assert.Contains(t, out, "kept")
}

func TestNewLogger_VerboseOverridesLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{
		Level:   "error",
		Format:  "json",
		Output:  &buf,
		Verbose: true,
	})

	log.Debug().Msg("debug message")

	assert.Contains(t, buf.String(), "debug message")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	log.WithComponent("extractor").Info().Msg("tagged")

	assert.Contains(t, buf.String(), `"component":"extractor"`)
}

func TestNewDefaultLogger(t *testing.T) {
	log := NewDefaultLogger()
	assert.NotNil(t, log)
}
