package timeworld_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

func TestRegisterLoginProfileFlow(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	ctx := t.Context()

	// Register a fresh phone.
	registerResp, err := client.Register(ctx, "+79991234567", "Иван", "Иванов")
	require.NoError(t, err)
	require.NotEmpty(t, registerResp.Token)

	session := client.NewSession(registerResp.Token)
	user, err := session.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "+79991234567", user.Phone)
	require.Equal(t, "Иван", user.FirstName)
	require.Nil(t, user.YandexID)

	// Logging in with the same phone returns the same account on a new
	// session.
	loginResp, err := client.Login(ctx, "+79991234567")
	require.NoError(t, err)
	require.Equal(t, registerResp.UserID, loginResp.UserID)
	require.NotEqual(t, registerResp.Token, loginResp.Token)

	// Re-registering the phone only refreshes the name.
	again, err := client.Register(ctx, "+79991234567", "Пётр", "Петров")
	require.NoError(t, err)
	require.Equal(t, registerResp.UserID, again.UserID)

	user, err = session.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Пётр", user.FirstName)
}

func TestLoginUnknownPhone(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	_, err := client.Login(t.Context(), "+70000000000")
	assertAPIError(t, err, worldsdk.ErrorCodeUserNotFound)
}

func TestProfileUpdate(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	session := registerUser(t, client, "+79991234568")
	ctx := t.Context()

	require.NoError(t, session.UpdateProfile(ctx, "Анна", "Сидорова", "+79991234569"))

	user, err := session.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Анна", user.FirstName)
	require.Equal(t, "+79991234569", user.Phone)

	// Logging in with the new phone works; the old one is gone.
	_, err = client.Login(ctx, "+79991234569")
	require.NoError(t, err)
	_, err = client.Login(ctx, "+79991234568")
	assertAPIError(t, err, worldsdk.ErrorCodeUserNotFound)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	session := registerUser(t, client, "+79991234570")
	ctx := t.Context()

	_, err := session.Profile(ctx)
	require.NoError(t, err)

	require.NoError(t, session.Logout(ctx))

	// The token's signature still verifies, but the session is gone.
	_, err = session.Profile(ctx)
	assertAPIError(t, err, worldsdk.ErrorCodeInvalidToken)
}

func TestProfileRequiresToken(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	_, err := client.NewSession("garbage").Profile(t.Context())
	assertAPIError(t, err, worldsdk.ErrorCodeInvalidToken)
}
