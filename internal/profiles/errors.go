// Package profiles loads résumé and ideal profile documents from disk or raw JSON.
package profiles

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// InvalidProfileError represents a document that parsed but failed
// validation. Cause is a *schemas.ValidationError or a validator error.
type InvalidProfileError struct {
	Kind  string
	Cause error
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Kind, e.Cause)
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}
