package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes      = 16
	keyBytes       = 32
	hashIterations = 210_000
)

// PasswordHasher derives and verifies PBKDF2-HMAC-SHA256 credentials. Stored
// form is a (salt, digest) pair, both base64-encoded.
type PasswordHasher struct {
	iterations int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{iterations: hashIterations}
}

// Hash derives a key from the password under a fresh 16-byte random salt.
func (h *PasswordHasher) Hash(password string) (salt, digest string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), raw, h.iterations, keyBytes, sha256.New)
	return base64.StdEncoding.EncodeToString(raw), base64.StdEncoding.EncodeToString(key), nil
}

// Verify recomputes the derived key and compares in constant time. Malformed
// stored values verify as false; Verify never fails with an error.
func (h *PasswordHasher) Verify(password, salt, digest string) bool {
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil || len(rawSalt) == 0 {
		return false
	}
	want, err := base64.StdEncoding.DecodeString(digest)
	if err != nil || len(want) != keyBytes {
		return false
	}
	got := pbkdf2.Key([]byte(password), rawSalt, h.iterations, keyBytes, sha256.New)
	return hmac.Equal(got, want)
}
