package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithJSON(rec, req, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestRespondWithError_Envelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithError(rec, req, http.StatusNotFound, "Not Found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	// The failure envelope is always a single message field.
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
}

func TestRespondWithErrorAndLog_ClientNeverSeesCause(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	cause := errors.New("pq: password authentication failed for user \"wardrobe\"")
	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "Internal Server Error", cause)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password authentication")
}
