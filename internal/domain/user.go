package domain

import (
	"errors"
	"net/mail"
	"time"
)

// User-specific validation errors.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Password length bounds. The upper bound is bcrypt's practical limit.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// DefaultAvatarURL is applied when a user registers without an avatar.
const DefaultAvatarURL = "https://static.wardrobe.example/avatars/default.png"

// User represents a registered account.
type User struct {
	ID             ID        `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only between decode and hashing
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	AvatarURL      string    `json:"avatar_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with a fresh ID and timestamps. The password is
// kept in plaintext; the store is responsible for hashing it before
// persisting. An empty avatar URL takes the default.
func NewUser(name, email, password, avatarURL string) (*User, error) {
	if avatarURL == "" {
		avatarURL = DefaultAvatarURL
	}

	now := time.Now().UTC()
	user := &User{
		ID:        NewID(),
		Name:      name,
		Email:     email,
		Password:  password,
		AvatarURL: avatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks that the User holds consistent data.
func (u *User) Validate() error {
	if !u.ID.IsValid() {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}
