// Package token generates random identifiers from a cryptographically secure
// source.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// DefaultSize is the token length used when a non-positive size is requested.
const DefaultSize = 16

// Hex returns a lowercase hexadecimal string of exactly size characters.
// A size of zero or less falls back to DefaultSize.
func Hex(size int) (string, error) {
	if size <= 0 {
		size = DefaultSize
	}

	buf := make([]byte, (size+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf)[:size], nil
}

// MustHex is like Hex but panics if the random source fails.
// Use it in initialization code only.
func MustHex(size int) string {
	t, err := Hex(size)
	if err != nil {
		panic(err)
	}

	return t
}

// UUID returns a random (version 4) UUID string.
func UUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}

	return id.String(), nil
}
