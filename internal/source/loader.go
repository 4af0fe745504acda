// Package source loads the constants and scoring documents that the
// pattern extraction runs over.
package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clutterscan/clutterscan/internal/utils"
)

// Document holds the raw text of one run's input files.
// It is immutable once loaded.
type Document struct {
	// Path is the resolved constants file path.
	Path string
	// Constants is the full text of the constants file.
	Constants string
	// Scoring is the full text of the sibling scoring file,
	// or empty when that file does not exist.
	Scoring string
}

// Options configures input resolution
type Options struct {
	// DefaultPath is used when Load is called with an empty path.
	DefaultPath string
	// ScoringFile is the sibling filename read from the same directory
	// as the constants file.
	ScoringFile string
}

// Loader resolves and reads input files
type Loader struct {
	opts Options
	log  *utils.Logger
}

// NewLoader creates a new input loader
func NewLoader(opts Options, log *utils.Logger) *Loader {
	if log == nil {
		log = utils.NewDefaultLogger()
	}
	return &Loader{opts: opts, log: log}
}

// Load resolves path (falling back to the configured default), reads the
// constants file, and attempts to read the sibling scoring file. A missing
// constants file is the run's only error; a missing scoring file just
// leaves Document.Scoring empty.
func (l *Loader) Load(path string) (*Document, error) {
	if path == "" {
		path = l.opts.DefaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	doc := &Document{
		Path:      path,
		Constants: string(data),
	}

	scoringPath := filepath.Join(filepath.Dir(path), l.opts.ScoringFile)
	if scoring, err := os.ReadFile(scoringPath); err == nil {
		doc.Scoring = string(scoring)
		l.log.Debug().Str("path", scoringPath).Int("bytes", len(scoring)).Msg("loaded scoring file")
	} else {
		l.log.Debug().Str("path", scoringPath).Msg("scoring file not found, continuing without it")
	}

	return doc, nil
}
