package api

import (
	"net/http"

	"github.com/attire-labs/wardrobe-api/internal/api/shared"
	"github.com/attire-labs/wardrobe-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// getUserIDFromContext extracts the authenticated caller's ID from the
// request context, placed there by the authentication middleware.
func getUserIDFromContext(r *http.Request) (domain.ID, bool) {
	return shared.UserIDFromContext(r.Context())
}

// getPathID extracts and validates a hex-24 identifier from the URL path.
// This runs before any storage lookup so malformed identifiers never reach
// the store.
func getPathID(r *http.Request, paramName string) (domain.ID, *Error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return "", NewError(KindBadRequest, paramName+" is required").
			WithContext("field", paramName)
	}

	id, err := domain.ParseID(pathParam)
	if err != nil {
		return "", NewError(KindBadRequest, "invalid id format").
			WithContext("field", paramName).
			WithContext("value", pathParam).
			Wrap(err)
	}

	return id, nil
}

// decodeAndValidate decodes the request body into v and checks it against
// its validation schema. On failure it writes the error response and
// returns false; the handler must stop.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		HandleAPIError(w, r, NewError(KindBadRequest, "Invalid request format").Wrap(err), "")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, ValidationAPIError(err), "")
		return false
	}
	return true
}
