package models

import (
	"errors"
	"fmt"
)

// ErrCollaboratorUnavailable marks failures of external tooling (the
// Graphviz rasterizer or the PyTM interpreter). Callers degrade instead
// of propagating it: textual diagram instead of an image, static finding
// list instead of a computed one.
var ErrCollaboratorUnavailable = errors.New("collaborator unavailable")

// InputError reports a missing or empty required input, detected before
// any generation is attempted.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// NewInputError creates an InputError for the given field.
func NewInputError(field, reason string) *InputError {
	return &InputError{Field: field, Reason: reason}
}

// ValidationError reports an enum or range violation in a structured
// model, naming the offending field and value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field %q value %q: %s", e.Field, e.Value, e.Reason)
}

// NewValidationError creates a ValidationError for the given field/value.
func NewValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
