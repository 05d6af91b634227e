package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the storage and service layers.
var (
	// ErrNotFound indicates the operation targeted a nonexistent record.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden indicates a valid credential with insufficient role.
	ErrForbidden = errors.New("admin role required")
)

// ValidationError reports a missing or malformed field on a write request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validationf builds a ValidationError for the given field.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
