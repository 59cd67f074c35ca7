package domain

import "time"

// Session backs a bearer token. The token itself is a signed JWT whose jti
// is the session id; deleting the row revokes the token regardless of its
// embedded expiry.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session has lapsed at the given instant.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
