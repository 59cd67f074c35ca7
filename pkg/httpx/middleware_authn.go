package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/timeworld/pkg/jwtx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
)

// SessionChecker confirms a verified token still maps to a live session.
// The token service implements this; a good signature alone is not enough
// since sessions expire server-side.
type SessionChecker interface {
	CheckSession(ctx context.Context, sessionID string) (userID string, err error)
}

// AuthnMiddleware verifies the bearer token and resolves the backing
// session. The session's user id is injected into the request context for
// downstream handlers.
func AuthnMiddleware(v jwtx.Verifier, sessions SessionChecker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("token verify failed", "err", err)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "token expired")
				return
			}

			userID, err := sessions.CheckSession(ctx, claims.ID)
			if err != nil {
				writeBearerError(w, "session no longer valid")
				return
			}

			ctx = ContextWithUserID(ctx, userID)
			ctx = ContextWithSessionID(ctx, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
