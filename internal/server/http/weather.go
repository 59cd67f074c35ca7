package http

import (
	"net/http"

	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

type WeatherHandler struct {
	WeatherService *service.WeatherService
}

// ServeHTTP returns the current weather for a city.
//
//	@Summary		Get weather
//	@Description	Proxies OpenWeatherMap for the named city (default Москва). Never fails:
//	@Description	without an upstream key or on upstream errors a canned clear-sky report
//	@Description	is served instead.
//	@Tags			Weather
//	@Produce		json
//	@Param			city	query		string	false	"City name"	default(Москва)
//	@Success		200		{object}	worldsdk.WeatherResponse
//	@Router			/v1/weather [get].
func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	weather := h.WeatherService.Current(r.Context(), r.URL.Query().Get("city"))

	httpx.WriteJSON(w, http.StatusOK, worldsdk.WeatherResponse{
		Temp:        weather.Temp,
		Condition:   weather.Condition,
		Description: weather.Description,
		Humidity:    weather.Humidity,
		WindSpeed:   weather.WindSpeed,
	})
}
