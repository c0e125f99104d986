package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attire-labs/wardrobe-api/internal/api/shared"
	"github.com/attire-labs/wardrobe-api/internal/domain"
	"github.com/attire-labs/wardrobe-api/internal/mocks"
	"github.com/attire-labs/wardrobe-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoSubject is a terminal handler that reports the user ID the
// middleware attached, so tests can verify context propagation.
func echoSubject(t *testing.T, captured *domain.ID) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := shared.UserIDFromContext(r.Context())
		require.True(t, ok, "user ID missing from context")
		*captured = userID
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	t.Parallel()

	subject := domain.NewID()
	jwtService := &mocks.MockJWTService{Claims: &auth.Claims{Subject: subject}}
	var captured domain.ID
	handler := NewAuthMiddleware(jwtService).Authenticate(echoSubject(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, subject, captured)
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"expired", auth.ErrExpiredToken},
		{"bad signature", auth.ErrInvalidToken},
		{"not yet valid", auth.ErrTokenNotYetValid},
		{"missing subject", auth.ErrMissingSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{ValidateErr: tt.err}
			handler := NewAuthMiddleware(jwtService).Authenticate(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					t.Error("handler reached with rejected credential")
				}),
			)

			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			req.Header.Set("Authorization", "Bearer some-token")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			// Expired and forged credentials read identically.
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestAuthenticate_NoCredential(t *testing.T) {
	t.Parallel()

	verifierCalled := false
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			verifierCalled = true
			return nil, auth.ErrInvalidToken
		},
	}
	handler := NewAuthMiddleware(jwtService).Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler reached without credential")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Authorization required"}`, rec.Body.String())
	assert.False(t, verifierCalled, "verifier must not run without a candidate")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"no token after scheme", "Bearer"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
			handler := NewAuthMiddleware(jwtService).Authenticate(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					t.Error("handler reached with malformed header")
				}),
			)

			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Invalid authorization format"}`, rec.Body.String())
		})
	}
}

func TestAuthenticate_LookupLocations(t *testing.T) {
	t.Parallel()

	subject := domain.NewID()

	newHandler := func(t *testing.T, wantToken string) http.Handler {
		jwtService := &mocks.MockJWTService{
			ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				assert.Equal(t, wantToken, tokenString)
				return &auth.Claims{Subject: subject}, nil
			},
		}
		var captured domain.ID
		return NewAuthMiddleware(jwtService).Authenticate(echoSubject(t, &captured))
	}

	t.Run("query parameter", func(t *testing.T) {
		handler := newHandler(t, "query-token")

		req := httptest.NewRequest(http.MethodGet, "/items?token=query-token", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("body field", func(t *testing.T) {
		handler := newHandler(t, "body-token")

		body := bytes.NewReader([]byte(`{"token":"body-token","name":"Denim Jacket"}`))
		req := httptest.NewRequest(http.MethodPost, "/items", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("header wins over query and body", func(t *testing.T) {
		handler := newHandler(t, "header-token")

		body := bytes.NewReader([]byte(`{"token":"body-token"}`))
		req := httptest.NewRequest(http.MethodPost, "/items?token=query-token", body)
		req.Header.Set("Authorization", "Bearer header-token")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("query wins over body", func(t *testing.T) {
		handler := newHandler(t, "query-token")

		body := bytes.NewReader([]byte(`{"token":"body-token"}`))
		req := httptest.NewRequest(http.MethodPost, "/items?token=query-token", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthenticate_BodyRestoredForHandler(t *testing.T) {
	t.Parallel()

	subject := domain.NewID()
	jwtService := &mocks.MockJWTService{Claims: &auth.Claims{Subject: subject}}

	payload := `{"token":"body-token","name":"Denim Jacket"}`
	handler := NewAuthMiddleware(jwtService).Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The handler must see the full original body even though the
			// middleware consumed it during credential lookup.
			got, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, payload, string(got))
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_NonJSONBodyHasNoCandidate(t *testing.T) {
	t.Parallel()

	jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
	handler := NewAuthMiddleware(jwtService).Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler reached without credential")
		}),
	)

	body := bytes.NewReader([]byte(`{"token":"ignored"}`))
	req := httptest.NewRequest(http.MethodPost, "/items", body)
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Authorization required"}`, rec.Body.String())
}

func TestAuthenticate_InvalidJSONBodyHasNoCandidate(t *testing.T) {
	t.Parallel()

	// A malformed body carries no token candidate; rejecting it with a
	// proper message is the route's job, not the middleware's.
	jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
	handler := NewAuthMiddleware(jwtService).Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler reached without credential")
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Authorization required"}`, rec.Body.String())
}
