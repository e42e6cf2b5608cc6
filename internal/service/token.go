package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes yields 32 URL-safe characters once encoded.
const tokenBytes = 24

// GenerateToken returns a new tenant credential drawn from crypto/rand.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
