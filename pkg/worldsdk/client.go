package worldsdk

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

const yandexAuthorizeURL = "https://oauth.yandex.ru/authorize"

// Client is a client for the TimeWorld service covering unauthenticated
// operations. Use NewSession to attach a bearer token for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps an existing token in an authenticated session. The token
// is opaque to the client; validity is only discovered by using it.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// YandexAuthURL builds the full-page redirect URL that starts the Yandex
// OAuth code flow for the given application client id.
func (c *Client) YandexAuthURL(clientID, redirectURI string) string {
	q := url.Values{
		"response_type": {"code"},
		"client_id":     {clientID},
	}
	if redirectURI != "" {
		q.Set("redirect_uri", redirectURI)
	}
	return yandexAuthorizeURL + "?" + q.Encode()
}
