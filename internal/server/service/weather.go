package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// DefaultWeatherCity is used when the query names no city.
const DefaultWeatherCity = "Москва"

// conditionLabels localizes OpenWeatherMap condition groups. Unknown groups
// pass through untranslated.
var conditionLabels = map[string]string{
	"Clear":        "Ясно",
	"Clouds":       "Облачно",
	"Rain":         "Дождь",
	"Snow":         "Снег",
	"Thunderstorm": "Гроза",
	"Drizzle":      "Морось",
	"Mist":         "Туман",
	"Fog":          "Туман",
}

// WeatherService proxies OpenWeatherMap. Weather is decoration, not a
// dependency: when no API key is configured or the upstream call fails, a
// canned clear-sky report is served instead of an error.
type WeatherService struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewWeatherService(apiKey string) *WeatherService {
	return &WeatherService{
		APIKey:  apiKey,
		BaseURL: defaultWeatherBaseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Current returns the weather for a city, never an error.
func (s *WeatherService) Current(ctx context.Context, city string) domain.Weather {
	if strings.TrimSpace(city) == "" {
		city = DefaultWeatherCity
	}

	if s.APIKey == "" {
		return fallbackWeather("API ключ не настроен")
	}

	w, err := s.fetch(ctx, city)
	if err != nil {
		slogx.FromContext(ctx).Warn("weather upstream failed", "city", city, "err", err)
		return fallbackWeather(fmt.Sprintf("Ошибка получения данных: %v", err))
	}
	return w
}

func (s *WeatherService) fetch(ctx context.Context, city string) (domain.Weather, error) {
	q := url.Values{
		"q":     {city},
		"appid": {s.APIKey},
		"units": {"metric"},
		"lang":  {"ru"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.Weather{}, err
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return domain.Weather{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Weather{}, fmt.Errorf("upstream returned %d", resp.StatusCode)
	}

	var body struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Weather{}, err
	}
	if len(body.Weather) == 0 {
		return domain.Weather{}, fmt.Errorf("upstream returned no conditions")
	}

	condition := body.Weather[0].Main
	if label, ok := conditionLabels[condition]; ok {
		condition = label
	}

	return domain.Weather{
		Temp:        fmt.Sprintf("%d°C", int(math.Round(body.Main.Temp))),
		Condition:   condition,
		Description: capitalize(body.Weather[0].Description),
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
	}, nil
}

func fallbackWeather(description string) domain.Weather {
	return domain.Weather{
		Temp:        "22°C",
		Condition:   "Ясно",
		Description: description,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
