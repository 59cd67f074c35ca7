package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/timeworld/internal/server/store"
	"github.com/aussiebroadwan/timeworld/internal/server/store/drivers/sqlite"
	"github.com/aussiebroadwan/timeworld/pkg/jwtx"
)

// newTestStore opens a migrated in-memory sqlite store with the seed cities.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newTestSigner(t *testing.T) *jwtx.HS256Signer {
	t.Helper()

	signer, err := jwtx.NewHS256Signer(bytes.Repeat([]byte("k"), jwtx.HS256KeyLength), "test-issuer")
	require.NoError(t, err)
	return signer
}

func newTestTokenService(t *testing.T, st store.Store) *TokenService {
	t.Helper()

	return &TokenService{
		Signer:     newTestSigner(t),
		Store:      st,
		Issuer:     "test-issuer",
		SessionTTL: time.Hour,
	}
}

// sessionID extracts the jti from a minted token.
func sessionID(t *testing.T, token string) string {
	t.Helper()

	claims, err := newTestSigner(t).Verify(token)
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)
	return claims.ID
}
