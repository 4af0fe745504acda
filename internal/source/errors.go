package source

import "errors"

// Sentinel errors for the source package
var (
	// ErrInputNotFound indicates the required input file does not exist.
	// It is the only fatal condition in a run.
	ErrInputNotFound = errors.New("input file not found")
)
