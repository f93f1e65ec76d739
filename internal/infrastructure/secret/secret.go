// Package secret manages the process-wide token signing secret. The secret is
// generated once and persisted outside the main data store so that tokens
// issued before a restart stay valid until their own expiry.
package secret

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const secretBytes = 32

// LoadOrCreate returns the signing secret stored at path, generating and
// persisting a fresh one on first run. An existing file is never rewritten:
// regenerating the secret would silently invalidate every outstanding session.
func LoadOrCreate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) == 0 {
			return nil, fmt.Errorf("secret file %s is empty", path)
		}
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read secret file: %w", err)
	}

	fresh := make([]byte, secretBytes)
	if _, err := rand.Read(fresh); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	if err := os.WriteFile(path, fresh, 0o600); err != nil {
		return nil, fmt.Errorf("write secret file: %w", err)
	}
	return fresh, nil
}
