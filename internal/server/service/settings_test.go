package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
)

func TestSettingsGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing row falls back to defaults", func(t *testing.T) {
		t.Parallel()

		svc := &SettingsService{Store: newTestStore(t)}
		settings, err := svc.Get(ctx, "nobody")
		require.NoError(t, err)
		require.Equal(t, domain.DefaultSettings(), settings)
	})
}

func TestSettingsUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("partial patch keeps the other fields", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		auth := newAuthService(t, st)
		_, userID, err := auth.Register(ctx, "+79991110001", "Иван", "Иванов")
		require.NoError(t, err)

		svc := &SettingsService{Store: st}
		theme := "dark"
		require.NoError(t, svc.Update(ctx, userID, domain.SettingsPatch{Theme: &theme}))

		settings, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, "dark", settings.Theme)
		require.Equal(t, "Москва", settings.WeatherCity)
		require.Equal(t, domain.TimezoneMode24, settings.TimezoneMode)
		require.True(t, settings.NotificationsEnabled)
	})

	t.Run("patch on a user without a row creates one first", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		svc := &SettingsService{Store: st}

		// A user row but no settings row, e.g. one created before the
		// defaults insert existed.
		tokens := newTestTokenService(t, st)
		userID := seedUser(t, ctx, tokens)

		city := "Лондон"
		require.NoError(t, svc.Update(ctx, userID, domain.SettingsPatch{WeatherCity: &city}))

		settings, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, "Лондон", settings.WeatherCity)
		require.Equal(t, "white", settings.Theme)
	})

	t.Run("disabling notifications round-trips", func(t *testing.T) {
		t.Parallel()

		st := newTestStore(t)
		auth := newAuthService(t, st)
		_, userID, err := auth.Register(ctx, "+79991110002", "Иван", "Иванов")
		require.NoError(t, err)

		svc := &SettingsService{Store: st}
		off := false
		require.NoError(t, svc.Update(ctx, userID, domain.SettingsPatch{NotificationsEnabled: &off}))

		settings, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		require.False(t, settings.NotificationsEnabled)
	})

	t.Run("invalid timezone mode", func(t *testing.T) {
		t.Parallel()

		svc := &SettingsService{Store: newTestStore(t)}
		mode := "25"
		err := svc.Update(ctx, "anyone", domain.SettingsPatch{TimezoneMode: &mode})
		require.ErrorIs(t, err, ErrInvalidTimezoneMode)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		t.Parallel()

		svc := &SettingsService{Store: newTestStore(t)}
		require.NoError(t, svc.Update(ctx, "anyone", domain.SettingsPatch{}))
	})
}
