package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attire-labs/wardrobe-api/internal/api/shared"
	"github.com/attire-labs/wardrobe-api/internal/domain"
	"github.com/attire-labs/wardrobe-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, userStore *mocks.MockUserStore) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Ada", "ada@example.com", "correcthorsebattery", "")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func authedRequest(t *testing.T, handler http.HandlerFunc, method string, payload interface{}, userID domain.ID) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/users/me", body)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(shared.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGetMe(t *testing.T) {
	t.Parallel()

	t.Run("success omits password material", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore)
		handler := NewUserHandler(userStore)

		rec := authedRequest(t, handler.GetMe, http.MethodGet, nil, user.ID)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "hashed")
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		handler := NewUserHandler(mocks.NewMockUserStore())

		rec := authedRequest(t, handler.GetMe, http.MethodGet, nil, domain.NewID())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
	})

	t.Run("missing subject in context", func(t *testing.T) {
		handler := NewUserHandler(mocks.NewMockUserStore())

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		rec := httptest.NewRecorder()
		handler.GetMe(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateMe(t *testing.T) {
	t.Parallel()

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore)
		handler := NewUserHandler(userStore)

		rec := authedRequest(t, handler.UpdateMe, http.MethodPut, UpdateUserRequest{
			Name: "Ada Lovelace",
		}, user.ID)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Ada Lovelace", resp.Name)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.Equal(t, domain.DefaultAvatarURL, resp.AvatarURL)
	})

	t.Run("email already taken conflicts", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore)
		other, err := domain.NewUser("Grace", "grace@example.com", "correcthorsebattery", "")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(context.Background(), other))
		handler := NewUserHandler(userStore)

		rec := authedRequest(t, handler.UpdateMe, http.MethodPut, UpdateUserRequest{
			Email: "grace@example.com",
		}, user.ID)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid email rejected before storage", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore)
		handler := NewUserHandler(userStore)

		rec := authedRequest(t, handler.UpdateMe, http.MethodPut, UpdateUserRequest{
			Email: "not-an-email",
		}, user.ID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "email")
	})
}

func TestDeleteMe(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore)
		handler := NewUserHandler(userStore)

		rec := authedRequest(t, handler.DeleteMe, http.MethodDelete, nil, user.ID)
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())

		_, err := userStore.GetByID(context.Background(), user.ID)
		assert.Error(t, err)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		handler := NewUserHandler(mocks.NewMockUserStore())

		rec := authedRequest(t, handler.DeleteMe, http.MethodDelete, nil, domain.NewID())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
