package utils

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

// GenerateID mints a new record identifier
func GenerateID() string {
	return uuid.New().String()
}

// GenerateShareToken returns an unguessable opaque token with 256 bits
// of entropy, URL-safe without padding.
func GenerateShareToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
