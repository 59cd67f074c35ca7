package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeatherCurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no api key serves the canned report", func(t *testing.T) {
		t.Parallel()

		svc := NewWeatherService("")
		w := svc.Current(ctx, "Москва")
		require.Equal(t, "22°C", w.Temp)
		require.Equal(t, "Ясно", w.Condition)
		require.Equal(t, "API ключ не настроен", w.Description)
	})

	t.Run("upstream success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Лондон", r.URL.Query().Get("q"))
			require.Equal(t, "test-key", r.URL.Query().Get("appid"))
			require.Equal(t, "metric", r.URL.Query().Get("units"))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"main": map[string]any{"temp": 17.6, "humidity": 81},
				"weather": []map[string]any{
					{"main": "Rain", "description": "небольшой дождь"},
				},
				"wind": map[string]any{"speed": 4.2},
			})
		}))
		t.Cleanup(srv.Close)

		svc := &WeatherService{APIKey: "test-key", BaseURL: srv.URL, HTTP: srv.Client()}
		w := svc.Current(ctx, "Лондон")
		require.Equal(t, "18°C", w.Temp)
		require.Equal(t, "Дождь", w.Condition)
		require.Equal(t, "Небольшой дождь", w.Description)
		require.Equal(t, 81, w.Humidity)
		require.InDelta(t, 4.2, w.WindSpeed, 0.001)
	})

	t.Run("unmapped condition passes through", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"main":    map[string]any{"temp": 30.0},
				"weather": []map[string]any{{"main": "Haze", "description": "haze"}},
			})
		}))
		t.Cleanup(srv.Close)

		svc := &WeatherService{APIKey: "test-key", BaseURL: srv.URL, HTTP: srv.Client()}
		w := svc.Current(ctx, "Дубай")
		require.Equal(t, "Haze", w.Condition)
	})

	t.Run("upstream failure degrades to the canned report", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		svc := &WeatherService{APIKey: "test-key", BaseURL: srv.URL, HTTP: srv.Client()}
		w := svc.Current(ctx, "Москва")
		require.Equal(t, "22°C", w.Temp)
		require.Equal(t, "Ясно", w.Condition)
		require.Contains(t, w.Description, "Ошибка получения данных")
	})

	t.Run("unreachable upstream degrades too", func(t *testing.T) {
		t.Parallel()

		svc := &WeatherService{
			APIKey:  "test-key",
			BaseURL: "http://127.0.0.1:1",
			HTTP:    &http.Client{Timeout: time.Second},
		}
		w := svc.Current(ctx, "Москва")
		require.Equal(t, "22°C", w.Temp)
	})

	t.Run("empty city defaults to the capital", func(t *testing.T) {
		t.Parallel()

		var queried string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			queried = r.URL.Query().Get("q")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"main":    map[string]any{"temp": 10.0},
				"weather": []map[string]any{{"main": "Clear", "description": "ясно"}},
			})
		}))
		t.Cleanup(srv.Close)

		svc := &WeatherService{APIKey: "test-key", BaseURL: srv.URL, HTTP: srv.Client()}
		_ = svc.Current(ctx, "  ")
		require.Equal(t, DefaultWeatherCity, queried)
	})
}
