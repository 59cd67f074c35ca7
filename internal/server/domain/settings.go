package domain

// Timezone display modes. "both" renders the 24h and 12h clocks side by side.
const (
	TimezoneMode24   = "24"
	TimezoneMode12   = "12"
	TimezoneModeBoth = "both"
)

// ValidTimezoneMode reports whether mode is one of the three display modes.
func ValidTimezoneMode(mode string) bool {
	switch mode {
	case TimezoneMode24, TimezoneMode12, TimezoneModeBoth:
		return true
	}
	return false
}

// Settings are per-user display preferences, one row per user.
type Settings struct {
	Theme                string
	WeatherCity          string
	TimezoneMode         string
	NotificationsEnabled bool
}

// DefaultSettings are the values served before a user ever saves anything.
func DefaultSettings() Settings {
	return Settings{
		Theme:                "white",
		WeatherCity:          "Москва",
		TimezoneMode:         TimezoneMode24,
		NotificationsEnabled: true,
	}
}

// SettingsPatch is a partial update: nil fields keep their stored values.
type SettingsPatch struct {
	Theme                *string
	WeatherCity          *string
	TimezoneMode         *string
	NotificationsEnabled *bool
}

// Empty reports whether the patch changes nothing.
func (p SettingsPatch) Empty() bool {
	return p.Theme == nil && p.WeatherCity == nil && p.TimezoneMode == nil && p.NotificationsEnabled == nil
}
