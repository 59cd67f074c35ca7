package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
	"github.com/aussiebroadwan/timeworld/internal/server/store"
)

func newAuthService(t *testing.T, st store.Store) *AuthService {
	t.Helper()

	return &AuthService{
		Store:  st,
		Tokens: newTestTokenService(t, st),
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates user, settings and session", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := newAuthService(t, st)

		token, userID, err := svc.Register(ctx, "+79990000001", "Иван", "Иванов")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.NotEmpty(t, userID)

		user, err := st.Users().GetUserByID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, "+79990000001", user.Phone)
		require.Equal(t, "Иван", user.FirstName)

		settings, err := st.Settings().GetSettings(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, domain.DefaultSettings(), settings)

		resolved, err := svc.Tokens.CheckSession(ctx, sessionID(t, token))
		require.NoError(t, err)
		require.Equal(t, userID, resolved)
	})

	t.Run("re-registering a phone updates the name, not the identity", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := newAuthService(t, st)

		_, firstID, err := svc.Register(ctx, "+79990000002", "Иван", "Иванов")
		require.NoError(t, err)

		_, secondID, err := svc.Register(ctx, "+79990000002", "Пётр", "Петров")
		require.NoError(t, err)
		require.Equal(t, firstID, secondID)

		user, err := st.Users().GetUserByID(ctx, firstID)
		require.NoError(t, err)
		require.Equal(t, "Пётр", user.FirstName)
		require.Equal(t, "Петров", user.LastName)
	})

	t.Run("rejects an empty phone", func(t *testing.T) {
		t.Parallel()

		svc := newAuthService(t, newTestStore(t))
		_, _, err := svc.Register(ctx, "   ", "Иван", "Иванов")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown phone", func(t *testing.T) {
		t.Parallel()

		svc := newAuthService(t, newTestStore(t))
		_, _, err := svc.Login(ctx, "+79995554433")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("registered phone gets a fresh session", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := newAuthService(t, st)

		registerToken, userID, err := svc.Register(ctx, "+79990000003", "Иван", "Иванов")
		require.NoError(t, err)

		loginToken, loginUserID, err := svc.Login(ctx, "+79990000003")
		require.NoError(t, err)
		require.Equal(t, userID, loginUserID)
		require.NotEqual(t, registerToken, loginToken)

		// Both sessions are independently live.
		for _, token := range []string{registerToken, loginToken} {
			resolved, err := svc.Tokens.CheckSession(ctx, sessionID(t, token))
			require.NoError(t, err)
			require.Equal(t, userID, resolved)
		}
	})

	t.Run("rejects an empty phone", func(t *testing.T) {
		t.Parallel()

		svc := newAuthService(t, newTestStore(t))
		_, _, err := svc.Login(ctx, "")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

// fakeYandex stands in for the two provider endpoints the callback touches.
func fakeYandex(t *testing.T, info map[string]any) *YandexClient {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "authorization_code", r.Form.Get("grant_type"))
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "provider-token"})
	})
	mux.HandleFunc("GET /info", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "OAuth provider-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(info)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &YandexClient{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     srv.URL + "/token",
		InfoURL:      srv.URL + "/info",
		HTTP:         &http.Client{Timeout: 5 * time.Second},
	}
}

func TestYandexCallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("first login creates the user", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := newAuthService(t, st)
		svc.Yandex = fakeYandex(t, map[string]any{
			"id":            "ya-123",
			"first_name":    "Иван",
			"last_name":     "Иванов",
			"default_phone": map[string]string{"number": "+79990000004"},
		})

		token, userID, err := svc.YandexCallback(ctx, "auth-code")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		user, err := st.Users().GetUserByID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, "+79990000004", user.Phone)
		require.NotNil(t, user.YandexID)
		require.Equal(t, "ya-123", *user.YandexID)
	})

	t.Run("missing phone gets a synthetic placeholder", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := newAuthService(t, st)
		svc.Yandex = fakeYandex(t, map[string]any{
			"id":         "ya-456",
			"first_name": "Иван",
			"last_name":  "Иванов",
		})

		_, userID, err := svc.YandexCallback(ctx, "auth-code")
		require.NoError(t, err)

		user, err := st.Users().GetUserByID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, "yandex_ya-456", user.Phone)
	})

	t.Run("repeat login reuses the account", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := newAuthService(t, st)
		svc.Yandex = fakeYandex(t, map[string]any{
			"id":         "ya-789",
			"first_name": "Иван",
			"last_name":  "Иванов",
		})

		_, firstID, err := svc.YandexCallback(ctx, "auth-code")
		require.NoError(t, err)

		_, secondID, err := svc.YandexCallback(ctx, "auth-code")
		require.NoError(t, err)
		require.Equal(t, firstID, secondID)
	})

	t.Run("provider failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		t.Cleanup(srv.Close)

		svc := newAuthService(t, newTestStore(t))
		svc.Yandex = &YandexClient{
			TokenURL: srv.URL,
			InfoURL:  srv.URL,
			HTTP:     &http.Client{Timeout: 5 * time.Second},
		}

		_, _, err := svc.YandexCallback(ctx, "auth-code")
		require.ErrorIs(t, err, ErrOAuthExchange)
	})

	t.Run("rejects an empty code", func(t *testing.T) {
		t.Parallel()

		svc := newAuthService(t, newTestStore(t))
		_, _, err := svc.YandexCallback(ctx, "")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	svc := newAuthService(t, st)

	_, userID, err := svc.Register(ctx, "+79990000005", "Иван", "Иванов")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(ctx, userID, "Пётр", "Петров", "+79990000006"))

	user, err := svc.Profile(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Пётр", user.FirstName)
	require.Equal(t, "+79990000006", user.Phone)

	require.ErrorIs(t, svc.UpdateProfile(ctx, userID, "Пётр", "Петров", " "), ErrInvalidRequest)
}
