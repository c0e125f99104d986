package api

import (
	"errors"
	"net/http"

	"github.com/attire-labs/wardrobe-api/internal/api/shared"
	"github.com/attire-labs/wardrobe-api/internal/domain"
	"github.com/attire-labs/wardrobe-api/internal/service/auth"
	"github.com/attire-labs/wardrobe-api/internal/store"
)

// Kind is the closed set of failure kinds. Every error leaving the API
// resolves to exactly one kind, and every kind binds to exactly one HTTP
// status and default message.
type Kind string

// The failure kinds.
const (
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

// Status returns the HTTP status bound to the kind.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DefaultMessage returns the message used when no custom one is supplied.
func (k Kind) DefaultMessage() string {
	switch k {
	case KindBadRequest:
		return "Bad Request"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "Not Found"
	case KindConflict:
		return "Conflict"
	default:
		return "Internal Server Error"
	}
}

// Error is a tagged failure value: a kind, an optional custom message,
// and optional structured context for the log sink. It is created at the
// point of failure and consumed exactly once by HandleAPIError.
type Error struct {
	Kind    Kind
	Message string            // "" means the kind's default message
	Context map[string]string // e.g. field name, violated constraint
	Err     error             // wrapped cause, logged but never sent to clients
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.DefaultMessage()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error of the given kind with a custom message.
// An empty message falls back to the kind's default at dispatch time.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithContext attaches a context entry for the log sink and returns the
// error for chaining.
func (e *Error) WithContext(key, value string) *Error {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// Wrap attaches the underlying cause and returns the error for chaining.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// kindForError maps collaborator fault signatures onto the taxonomy. An
// unrecognized error is Internal.
func kindForError(err error) Kind {
	switch {
	// Malformed input, domain constraint violations, and storage schema
	// violations.
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidID),
		isDomainValidationError(err):
		return KindBadRequest

	// Credential faults. The middleware already resolves these; kept here
	// as defense in depth for errors surfacing through other paths.
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMissingSubject):
		return KindUnauthorized

	case errors.Is(err, domain.ErrForbidden):
		return KindForbidden

	case errors.Is(err, store.ErrNotFound):
		return KindNotFound

	case errors.Is(err, store.ErrDuplicate):
		return KindConflict

	default:
		return KindInternal
	}
}

// domainValidationSentinels are domain errors whose text is a plain
// constraint description, safe to echo to callers.
var domainValidationSentinels = []error{
	domain.ErrValidation,
	domain.ErrInvalidID,
	domain.ErrInvalidEmail,
	domain.ErrInvalidURL,
	domain.ErrInvalidCategory,
	domain.ErrInvalidSize,
	domain.ErrEmptyEmail,
	domain.ErrEmptyPassword,
	domain.ErrPasswordTooShort,
	domain.ErrPasswordTooLong,
	domain.ErrEmptyItemName,
	domain.ErrItemNameShort,
	domain.ErrItemNameLong,
}

func isDomainValidationError(err error) bool {
	for _, sentinel := range domainValidationSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	var vErr *domain.ValidationError
	return errors.As(err, &vErr)
}

// HandleAPIError is the single terminal stage for failures: it resolves
// whatever error reached it to a kind, emits exactly one response in the
// uniform envelope, and logs one structured record with the full detail.
//
// Resolution order:
//  1. A typed *Error is used verbatim.
//  2. Known collaborator faults are mapped to a kind via kindForError;
//     msgOverride (when non-empty) or the kind's default becomes the
//     client message. Domain validation text is safe and echoed as-is.
//  3. Anything unrecognized becomes Internal with the fixed default
//     message. Internal detail never reaches the client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, msgOverride string) {
	kind := KindInternal
	message := ""

	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		kind = apiErr.Kind
		message = apiErr.Message
	default:
		kind = kindForError(err)
		message = msgOverride
		if message == "" && kind == KindBadRequest && isDomainValidationError(err) {
			message = err.Error()
		}
	}

	if message == "" || kind == KindInternal {
		// Internal failures always carry the fixed default; detail goes to
		// the log sink only.
		message = kind.DefaultMessage()
	}

	shared.RespondWithErrorAndLog(w, r, kind.Status(), message, err)
}
