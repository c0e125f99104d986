// Package auth provides credential verification and password hashing.
// Tokens are signed, time-bounded bearer credentials; a verified token
// yields the caller identity attached to the request for its lifetime.
package auth

import (
	"context"
	"time"

	"github.com/attire-labs/wardrobe-api/internal/domain"
)

// Claims is the caller identity extracted from a verified token. It lives
// only for the duration of the request that presented the credential.
type Claims struct {
	// Subject is the account ID the token was issued to. Always the
	// canonical `sub` claim; tokens without it are rejected outright.
	Subject domain.ID

	// IssuedAt is when the token was created.
	IssuedAt time.Time

	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time

	// ID is the unique token identifier (jti claim).
	ID string
}

// JWTService generates and validates bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token for the given subject.
	GenerateToken(ctx context.Context, subject domain.ID) (string, error)

	// ValidateToken verifies the signature and time bounds of tokenString
	// and returns the claims. A forged, malformed, or expired token fails
	// with ErrInvalidToken or ErrExpiredToken; callers treat both as an
	// authentication failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
