package state

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the session token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file under the user's config
// directory, the CLI analog of the browser's local storage.
type FileTokenStore struct {
	Path string
}

// NewFileTokenStore places the token file under dir, defaulting to
// <user-config-dir>/timeworld when dir is empty.
func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "timeworld")
	}
	return &FileTokenStore{Path: filepath.Join(dir, "token")}, nil
}

// Load returns the stored token, or "" when none is stored.
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0750); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0600)
}

// Clear removes the token file; a missing file already counts as cleared.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
