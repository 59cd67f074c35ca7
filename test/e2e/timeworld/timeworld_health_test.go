package timeworld_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)
	ctx := t.Context()

	live, err := client.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.NotEmpty(t, live.Uptime)
	require.NotEmpty(t, live.Version)

	ready, err := client.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

// TestWeatherFallback exercises the weather proxy without an upstream key:
// the service degrades to its canned clear-sky report instead of failing.
func TestWeatherFallback(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := worldsdk.NewClient(baseURL)

	weather, err := client.Weather(t.Context(), "Москва")
	require.NoError(t, err)
	require.Equal(t, "22°C", weather.Temp)
	require.Equal(t, "Ясно", weather.Condition)
	require.NotEmpty(t, weather.Description)
}
