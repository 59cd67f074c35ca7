package worldsdk

// TokenResponse is returned by register, login and the Yandex callback.
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// RegisterRequest creates or refreshes a user keyed by phone.
type RegisterRequest struct {
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest authenticates an existing phone.
type LoginRequest struct {
	Phone string `json:"phone"`
}

// YandexCallbackRequest completes the OAuth code flow.
type YandexCallbackRequest struct {
	Code string `json:"code"`
}

// UserResponse is the authenticated profile.
type UserResponse struct {
	ID        string  `json:"id"`
	Phone     string  `json:"phone"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	YandexID  *string `json:"yandex_id"`
}

// ProfileUpdateRequest replaces the editable profile fields.
type ProfileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// City is one catalogue entry. The parallel-world entry carries the
// timezone sentinel "parallel" instead of an IANA zone name.
type City struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Timezone  string   `json:"timezone"`
	IsCapital bool     `json:"is_capital"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CitiesResponse wraps every city listing.
type CitiesResponse struct {
	Cities []City `json:"cities"`
}

// FavoriteRequest marks a city as favorite.
type FavoriteRequest struct {
	CityID int64 `json:"city_id"`
}

// WeatherResponse is a point-in-time report. Temp is pre-formatted for
// display ("22°C"); humidity and wind are omitted by the canned fallback.
type WeatherResponse struct {
	Temp        string  `json:"temp"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity,omitempty"`
	WindSpeed   float64 `json:"wind_speed,omitempty"`
}

// SettingsResponse is the full per-user settings object.
type SettingsResponse struct {
	Theme                string `json:"theme"`
	WeatherCity          string `json:"weather_city"`
	TimezoneMode         string `json:"timezone_mode"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

// SettingsUpdateRequest is a partial update: nil fields are omitted from the
// body and keep their stored values server-side.
type SettingsUpdateRequest struct {
	Theme                *string `json:"theme,omitempty"`
	WeatherCity          *string `json:"weather_city,omitempty"`
	TimezoneMode         *string `json:"timezone_mode,omitempty"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
}

// SuccessResponse acknowledges writes that return no data.
type SuccessResponse struct {
	Success bool `json:"success"`
}
