package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
)

type settingsRepo struct {
	q querier
}

func (r *settingsRepo) GetSettings(ctx context.Context, userID string) (domain.Settings, error) {
	var s domain.Settings
	err := r.q.QueryRowContext(ctx, `
		SELECT theme, weather_city, timezone_mode, notifications_enabled
		FROM user_settings WHERE user_id = ?`, userID).
		Scan(&s.Theme, &s.WeatherCity, &s.TimezoneMode, &s.NotificationsEnabled)
	if err != nil {
		return domain.Settings{}, mapNotFound(err)
	}
	return s, nil
}

func (r *settingsRepo) CreateDefaultSettings(ctx context.Context, userID string) error {
	def := domain.DefaultSettings()
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO user_settings (user_id, theme, weather_city, timezone_mode, notifications_enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO NOTHING`,
		userID, def.Theme, def.WeatherCity, def.TimezoneMode, def.NotificationsEnabled, now, now)
	return err
}

// UpdateSettings applies a partial update. COALESCE keeps the stored value
// for any field the patch leaves nil, so absent fields never clobber.
func (r *settingsRepo) UpdateSettings(ctx context.Context, userID string, patch domain.SettingsPatch) error {
	var notif any
	if patch.NotificationsEnabled != nil {
		notif = *patch.NotificationsEnabled
	}

	res, err := r.q.ExecContext(ctx, `
		UPDATE user_settings SET
			theme                 = COALESCE(?, theme),
			weather_city          = COALESCE(?, weather_city),
			timezone_mode         = COALESCE(?, timezone_mode),
			notifications_enabled = COALESCE(?, notifications_enabled),
			updated_at            = ?
		WHERE user_id = ?`,
		mapOptionalString(patch.Theme),
		mapOptionalString(patch.WeatherCity),
		mapOptionalString(patch.TimezoneMode),
		notif,
		time.Now().UTC(),
		userID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
