package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
	"github.com/aussiebroadwan/timeworld/internal/server/store"
	"github.com/aussiebroadwan/timeworld/pkg/idx"
	"github.com/aussiebroadwan/timeworld/pkg/jwtx"
)

var (
	ErrInvalidSession = errors.New("invalid_session")
)

// TokenService mints and resolves session tokens. A token is an HS256 JWT
// whose jti references a sessions row; the row is the revocation point, so
// a valid signature on a deleted session is still rejected.
type TokenService struct {
	Signer     jwtx.Signer
	Store      store.Store
	Issuer     string
	SessionTTL time.Duration
}

// MintSession creates a session row on the given store handle (pass a Tx to
// fold it into a larger atomic operation) and returns the signed token.
func (s *TokenService) MintSession(ctx context.Context, st store.Store, userID string) (string, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        idx.New().String(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	if err := st.Sessions().CreateSession(ctx, session); err != nil {
		return "", err
	}

	return s.Signer.Sign(jwtx.NewSessionClaims(userID, session.ID, s.Issuer, ttl, now))
}

// CheckSession resolves a verified token's session id to its user. It is the
// httpx.SessionChecker used by the authn middleware.
func (s *TokenService) CheckSession(ctx context.Context, sessionID string) (string, error) {
	session, err := s.Store.Sessions().GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidSession
		}
		return "", err
	}

	if session.Expired(time.Now().UTC()) {
		return "", ErrInvalidSession
	}

	return session.UserID, nil
}

// RevokeSession deletes the session row, invalidating its token immediately.
func (s *TokenService) RevokeSession(ctx context.Context, sessionID string) error {
	err := s.Store.Sessions().DeleteSession(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil // already gone, same outcome
	}
	return err
}
