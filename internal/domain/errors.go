package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all layers. Adapters translate driver errors
// into these so services and handlers can branch with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)

// FieldError names the offending field of a validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates field-level validation failures. It unwraps to
// ErrValidation so callers can test for the class without inspecting fields.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
