package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attire-labs/wardrobe-api/internal/config"
	"github.com/attire-labs/wardrobe-api/internal/mocks"
	"github.com/attire-labs/wardrobe-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication wires a full application with in-memory stores and a
// real token service, so requests exercise the same router, middleware,
// and handlers as production.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth: config.AuthConfig{
			JWTSecret:            "integration-test-secret-0123456789ab",
			TokenLifetimeMinutes: 60,
		},
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	return &application{
		config:           cfg,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		userStore:        mocks.NewMockUserStore(),
		itemStore:        mocks.NewMockItemStore(),
		jwtService:       jwtService,
		passwordVerifier: &mocks.MockPasswordVerifier{},
	}
}

func request(t *testing.T, router http.Handler, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()
	rec := request(t, router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestProtectedRoutesRequireCredential(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/me"},
		{http.MethodDelete, "/api/users/me"},
		{http.MethodGet, "/api/items"},
		{http.MethodPost, "/api/items"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := request(t, router, route.method, route.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Authorization required"}`, rec.Body.String())
		})
	}
}

func TestRegisterLoginAndManageItems(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	// Register and capture the issued token.
	rec := request(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "correcthorsebattery",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	require.NotEmpty(t, registered.Token)

	// The token gates the account endpoint.
	rec = request(t, router, http.MethodGet, "/api/users/me", registered.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada@example.com")

	// Create an item and read it back.
	rec = request(t, router, http.MethodPost, "/api/items", registered.Token, map[string]string{
		"name":     "Denim Jacket",
		"category": "jacket",
		"size":     "m",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item struct {
		ID      string `json:"id"`
		OwnerID string `json:"owner_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, registered.UserID, item.OwnerID)

	rec = request(t, router, http.MethodGet, "/api/items/"+item.ID, registered.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A fresh login also yields a working token.
	rec = request(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "correcthorsebattery",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var loggedIn struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))

	rec = request(t, router, http.MethodGet, "/api/items", loggedIn.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Denim Jacket")
}

func TestAnotherUserCannotTouchForeignItems(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	registerUser := func(name, email string) string {
		rec := request(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
			"name":     name,
			"email":    email,
			"password": "correcthorsebattery",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.Token
	}

	adaToken := registerUser("Ada", "ada@example.com")
	graceToken := registerUser("Grace", "grace@example.com")

	rec := request(t, router, http.MethodPost, "/api/items", adaToken, map[string]string{
		"name":     "Denim Jacket",
		"category": "jacket",
		"size":     "m",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var item struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))

	rec = request(t, router, http.MethodDelete, "/api/items/"+item.ID, graceToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"You do not own this item"}`, rec.Body.String())
}
