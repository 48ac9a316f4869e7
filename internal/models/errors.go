package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches any *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a rejected field on task creation.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

// NewInvalidInputError creates a new invalid input error.
func NewInvalidInputError(field, value, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

// Error returns the reason, which is what the UI shows to the user.
func (e *InvalidInputError) Error() string {
	return e.Reason
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Detail includes the field and rejected value, for logs.
func (e *InvalidInputError) Detail() string {
	return fmt.Sprintf("invalid input for %s (%q): %s", e.Field, e.Value, e.Reason)
}
