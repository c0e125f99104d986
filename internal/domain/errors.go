// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is not a 24-character
	// hexadecimal string.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidURL is returned when a URL field is not well-formed.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidCategory is returned when a clothing item category is not
	// one of the known categories.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidSize is returned when a clothing item size is not one of
	// the known sizes.
	ErrInvalidSize = errors.New("invalid size")

	// ErrForbidden is returned when the caller is authenticated but not
	// permitted to perform the operation, e.g. mutating an item they do
	// not own.
	ErrForbidden = errors.New("operation not permitted")
)

// ValidationError carries the field and constraint that failed validation,
// wrapping a domain sentinel so callers can still use errors.Is.
type ValidationError struct {
	Field   string // The field that failed validation (e.g., "email")
	Message string // Constraint description (e.g., "must be at least 2 characters long")
	Err     error  // Wrapped sentinel, usually ErrValidation
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + " " + e.Message
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field and
// constraint message. A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}
