package shared

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse. Field errors report JSON field
// names so validation messages line up with what callers actually sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct against its schema tags.
// Violations are evaluated in declared field order; the returned
// validator.ValidationErrors preserves that order so callers can fail
// fast on the first one.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// ValidateVar validates a single value against the given tag, e.g. a path
// parameter against "hexadecimal,len=24".
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}
