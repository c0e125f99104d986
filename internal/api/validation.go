package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationAPIError converts a validator error into a BadRequest Error
// carrying a message for the first violated constraint. Violations are
// reported fail-fast: declared field order, first violation wins.
func ValidationAPIError(err error) *Error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return NewError(KindBadRequest, "Validation error").Wrap(err)
	}

	first := vErrs[0]
	return NewError(KindBadRequest, fieldErrorMessage(first)).
		WithContext("field", first.Field()).
		WithContext("constraint", first.Tag()).
		Wrap(err)
}

// fieldErrorMessage renders a single field violation as a client-facing
// message naming the field and the bound that was violated.
func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		field = "field"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		allowed := strings.Join(strings.Fields(fe.Param()), ", ")
		return fmt.Sprintf("%s must be one of: %s", field, allowed)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "hexadecimal", "len":
		// Identifier format checks surface uniformly.
		return "invalid id format"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
