package worldsdk

// Session is an authenticated view of the service. It carries the bearer
// token for profile, favorites and settings operations. There is no refresh
// protocol: a lapsed token surfaces as ErrInvalidToken and the caller
// re-authenticates.
type Session struct {
	client *Client
	token  string
}

// Token returns the raw bearer token, for persisting between runs.
func (s *Session) Token() string {
	return s.token
}
