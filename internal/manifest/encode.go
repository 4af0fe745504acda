package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnsupportedFormat indicates an unknown output format
var ErrUnsupportedFormat = errors.New("unsupported output format (use json or yaml)")

// Encode serializes the manifest to w. JSON output uses 2-space
// indentation and a trailing newline; an empty format means JSON.
func (m *Manifest) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
