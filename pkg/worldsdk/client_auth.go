package worldsdk

import (
	"context"
	"net/http"
)

// Register creates (or refreshes) a user keyed by phone and returns a fresh
// session token. Re-registering an existing phone updates the name fields.
func (c *Client) Register(ctx context.Context, phone, firstName, lastName string) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/register", RegisterRequest{
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return nil, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login mints a session for an already-registered phone. Unknown phones
// return ErrUserNotFound (code "user_not_found", status 404).
func (c *Client) Login(ctx context.Context, phone string) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Phone: phone})
	if err != nil {
		return nil, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// YandexCallback completes the Yandex OAuth code flow, exchanging the code
// server-side for a session token.
func (c *Client) YandexCallback(ctx context.Context, code string) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/yandex/callback", YandexCallbackRequest{Code: code})
	if err != nil {
		return nil, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
