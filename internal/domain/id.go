package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// IDLength is the length in characters of an entity identifier:
// 12 random bytes, hex encoded.
const IDLength = 24

// ID is an opaque entity identifier. The canonical representation is a
// 24-character lowercase hexadecimal string.
type ID string

// NewID generates a new random ID.
func NewID() ID {
	b := make([]byte, IDLength/2)
	// crypto/rand.Read never fails on supported platforms; if the kernel
	// entropy source is broken there is nothing sensible to do here.
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("domain: reading random bytes for ID: %v", err))
	}
	return ID(hex.EncodeToString(b))
}

// ParseID validates raw as a 24-character hexadecimal identifier and
// returns it in canonical form. Returns ErrInvalidID otherwise.
func ParseID(raw string) (ID, error) {
	if len(raw) != IDLength {
		return "", fmt.Errorf("%w: must be %d characters", ErrInvalidID, IDLength)
	}
	for _, c := range raw {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return "", fmt.Errorf("%w: must be hexadecimal", ErrInvalidID)
		}
	}
	return ID(raw).normalize(), nil
}

// IsValid reports whether the ID is in canonical hex-24 form.
func (id ID) IsValid() bool {
	_, err := ParseID(string(id))
	return err == nil
}

// String returns the ID as a plain string.
func (id ID) String() string {
	return string(id)
}

func (id ID) normalize() ID {
	b := []byte(id)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}
	return ID(b)
}
