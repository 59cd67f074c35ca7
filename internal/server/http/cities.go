package http

import (
	"net/http"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

type CitiesHandler struct {
	CityService *service.CityService
}

// ServeHTTP lists the city catalogue.
//
//	@Summary		List cities
//	@Description	With ?search= matches city and country names case-insensitively; with
//	@Description	?country= lists that country's cities; with neither, a capped default
//	@Description	listing. Always ordered capital-first then by name.
//	@Tags			Cities
//	@Produce		json
//	@Param			search	query		string	false	"Substring to match against city or country names"
//	@Param			country	query		string	false	"Exact country name"
//	@Success		200		{object}	worldsdk.CitiesResponse
//	@Failure		500		{object}	worldsdk.APIError	"Internal server error"
//	@Router			/v1/cities [get].
func (h *CitiesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := r.URL.Query()
	cities, err := h.CityService.List(ctx, q.Get("search"), q.Get("country"))
	if err != nil {
		log.Error("city listing failed", "err", err)
		worldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, citiesResponse(cities))
}

func citiesResponse(cities []domain.City) worldsdk.CitiesResponse {
	out := worldsdk.CitiesResponse{Cities: make([]worldsdk.City, 0, len(cities))}
	for _, c := range cities {
		out.Cities = append(out.Cities, worldsdk.City{
			ID:        c.ID,
			Name:      c.Name,
			Timezone:  c.Timezone,
			IsCapital: c.IsCapital,
			Country:   c.Country,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		})
	}
	return out
}
