package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrInvalidURL indicates that a string does not match the accepted URL pattern.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrValidationFailed indicates that an entity failed its construction invariants.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
// Err, when set, is the sentinel the failure belongs to and is exposed through Unwrap.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the sentinel wrapped by the validation error.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidationFailed
	}
	return e.Err
}
