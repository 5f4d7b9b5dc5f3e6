package utils

import (
	"crypto/rand"
	"encoding/hex"
)

const sessionTokenBytes = 32

// NewSessionToken returns 64 hex characters of crypto/rand output.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
