package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/hkdf"
)

const masterSecretLength = 32

// LoadOrCreateMasterSecret reads the master secret from file, generating and
// persisting a fresh one on first run. The file is created 0600 since it is
// the root of all derived signing keys.
func LoadOrCreateMasterSecret(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("cryptox: create secret dir: %w", err)
	}

	if data, err := os.ReadFile(path); err == nil {
		if len(data) < masterSecretLength {
			return nil, fmt.Errorf("cryptox: master secret in %s is too short", path)
		}
		return data[:masterSecretLength], nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("cryptox: read master secret: %w", err)
	}

	secret := make([]byte, masterSecretLength)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("cryptox: generate master secret: %w", err)
	}

	if err := os.WriteFile(path, secret, 0600); err != nil {
		return nil, fmt.Errorf("cryptox: persist master secret: %w", err)
	}

	return secret, nil
}

// DeriveKey expands the master secret into a purpose-bound subkey via HKDF.
// Distinct info strings yield independent keys, so rotating one use does not
// burn the others.
func DeriveKey(secret []byte, info string, length int) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, nil, []byte(info))

	key := make([]byte, length)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("cryptox: derive %q key: %w", info, err)
	}
	return key, nil
}
