package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser("Ada", "ada@example.com", "correcthorsebattery", "")
		require.NoError(t, err)

		assert.True(t, user.ID.IsValid())
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, DefaultAvatarURL, user.AvatarURL, "empty avatar should take the default")
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	t.Run("explicit avatar preserved", func(t *testing.T) {
		user, err := NewUser("Ada", "ada@example.com", "correcthorsebattery", "https://cdn.example.com/a.png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.png", user.AvatarURL)
	})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "empty email",
			email:    "",
			password: "correcthorsebattery",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "malformed email",
			email:    "not-an-email",
			password: "correcthorsebattery",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			email:    "ada@example.com",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			email:    "ada@example.com",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser("Ada", tt.email, tt.password, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// Users loaded from the store carry only the hash.
	user := &User{
		ID:             NewID(),
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
