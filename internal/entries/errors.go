package entries

import (
	"errors"
	"fmt"
)

// LoadError indicates the persisted config source exists but could not be
// parsed. The editor surfaces it and falls back to seeded defaults rather
// than aborting.
type LoadError struct {
	Path    string // File that failed to load
	Line    int    // 1-based line number of the offending line, 0 if unknown
	Message string // Human-readable description
	Err     error  // Underlying error (if any)
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %s", e.Path, e.Line, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *LoadError) Unwrap() error {
	return e.Err
}

// SaveError indicates an I/O failure while persisting the store. The
// editing session continues so the user can retry the save.
type SaveError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SaveError) Unwrap() error {
	return e.Err
}

// IsLoadError checks if an error is a load (parse) error
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// IsSaveError checks if an error is a save (I/O) error
func IsSaveError(err error) bool {
	var se *SaveError
	return errors.As(err, &se)
}
