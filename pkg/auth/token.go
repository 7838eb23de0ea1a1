package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns an opaque random bearer token of n bytes of entropy,
// hex encoded (2n characters).
func GenerateToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
