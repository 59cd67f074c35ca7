package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateMasterSecret(t *testing.T) {
	t.Parallel()

	t.Run("first run generates and persists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "master.secret")
		secret, err := LoadOrCreateMasterSecret(path)
		require.NoError(t, err)
		require.Len(t, secret, masterSecretLength)

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("second run loads the same secret", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "master.secret")
		first, err := LoadOrCreateMasterSecret(path)
		require.NoError(t, err)

		second, err := LoadOrCreateMasterSecret(path)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("truncated file is rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "master.secret")
		require.NoError(t, os.WriteFile(path, []byte("too short"), 0600))

		_, err := LoadOrCreateMasterSecret(path)
		require.Error(t, err)
	})
}

func TestDeriveKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "master.secret")
	secret, err := LoadOrCreateMasterSecret(path)
	require.NoError(t, err)

	signing, err := DeriveKey(secret, "session-signing", 32)
	require.NoError(t, err)
	require.Len(t, signing, 32)

	// Same secret and info is deterministic; different info is independent.
	again, err := DeriveKey(secret, "session-signing", 32)
	require.NoError(t, err)
	require.Equal(t, signing, again)

	other, err := DeriveKey(secret, "something-else", 32)
	require.NoError(t, err)
	require.NotEqual(t, signing, other)
}
