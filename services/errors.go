package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Error kinds surfaced by the service layer. Handlers map these to
// HTTP statuses; nothing below this package knows about transport.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)

// FieldError is a validation failure tied to a specific input field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func fieldErrorf(field, format string, args ...any) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// isDuplicate reports whether err is a unique-constraint violation.
// Checks the translated gorm error first, then falls back to driver
// message matching for dialects without error translation.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
