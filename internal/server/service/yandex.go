package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultYandexTokenURL = "https://oauth.yandex.ru/token"
	defaultYandexInfoURL  = "https://login.yandex.ru/info"
)

var ErrOAuthExchange = errors.New("oauth_exchange_failed")

// YandexUser is the subset of the Yandex profile the service cares about.
type YandexUser struct {
	ID        string
	FirstName string
	LastName  string
	Phone     string
}

// YandexClient talks to the Yandex OAuth endpoints. TokenURL and InfoURL are
// overridable so tests can point it at an httptest server.
type YandexClient struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	InfoURL      string
	HTTP         *http.Client
}

func NewYandexClient(clientID, clientSecret string) *YandexClient {
	return &YandexClient{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     defaultYandexTokenURL,
		InfoURL:      defaultYandexInfoURL,
		HTTP:         &http.Client{Timeout: 10 * time.Second},
	}
}

// Exchange trades an authorization code for the user's profile.
func (c *YandexClient) Exchange(ctx context.Context, code string) (YandexUser, error) {
	accessToken, err := c.exchangeCode(ctx, code)
	if err != nil {
		return YandexUser{}, err
	}
	return c.fetchInfo(ctx, accessToken)
}

func (c *YandexClient) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOAuthExchange, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned %d", ErrOAuthExchange, resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOAuthExchange, err)
	}
	if body.AccessToken == "" {
		return "", ErrOAuthExchange
	}
	return body.AccessToken, nil
}

func (c *YandexClient) fetchInfo(ctx context.Context, accessToken string) (YandexUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.InfoURL, nil)
	if err != nil {
		return YandexUser{}, err
	}
	req.Header.Set("Authorization", "OAuth "+accessToken)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return YandexUser{}, fmt.Errorf("%w: %v", ErrOAuthExchange, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return YandexUser{}, fmt.Errorf("%w: info endpoint returned %d", ErrOAuthExchange, resp.StatusCode)
	}

	var body struct {
		ID           string `json:"id"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		DefaultPhone struct {
			Number string `json:"number"`
		} `json:"default_phone"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return YandexUser{}, fmt.Errorf("%w: %v", ErrOAuthExchange, err)
	}
	if body.ID == "" {
		return YandexUser{}, ErrOAuthExchange
	}

	return YandexUser{
		ID:        body.ID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.DefaultPhone.Number,
	}, nil
}
