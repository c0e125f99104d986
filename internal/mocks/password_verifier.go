package mocks

import (
	"errors"

	"github.com/attire-labs/wardrobe-api/internal/service/auth"
)

// ErrPasswordMismatch is returned by MockPasswordVerifier on mismatch.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordVerifier implements auth.PasswordVerifier for testing. It
// matches against the "hashed:<password>" convention used by
// MockUserStore, or defers to CompareFn when set.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return ErrPasswordMismatch
}
