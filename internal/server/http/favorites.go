package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

type FavoritesHandler struct {
	CityService *service.CityService
}

// HandleAdd marks a city as favorite.
//
//	@Summary		Add favorite
//	@Description	Marks a city as favorite for the authenticated user. Adding one that is
//	@Description	already marked is a no-op.
//	@Tags			Cities
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		worldsdk.FavoriteRequest	true	"city_id"
//	@Success		200		{object}	worldsdk.SuccessResponse
//	@Failure		400		{object}	worldsdk.APIError	"Malformed body"
//	@Failure		401		{object}	worldsdk.APIError	"Invalid or missing token"
//	@Failure		404		{object}	worldsdk.APIError	"Unknown city id"
//	@Failure		500		{object}	worldsdk.APIError	"Internal server error"
//	@Router			/v1/cities/favorite [post].
func (h *FavoritesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		worldsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req worldsdk.FavoriteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.CityID == 0 {
		worldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.CityService.AddFavorite(ctx, userID, req.CityID); err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			worldsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("add favorite failed", "user_id", userID, "city_id", req.CityID, "err", err)
		worldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.SuccessResponse{Success: true})
}

// HandleRemove unmarks a favorite city.
//
//	@Summary		Remove favorite
//	@Description	Removes a city from the authenticated user's favorites. Removing one that
//	@Description	was never marked is a no-op.
//	@Tags			Cities
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"City id"
//	@Success		200	{object}	worldsdk.SuccessResponse
//	@Failure		400	{object}	worldsdk.APIError	"Non-numeric city id"
//	@Failure		401	{object}	worldsdk.APIError	"Invalid or missing token"
//	@Failure		500	{object}	worldsdk.APIError	"Internal server error"
//	@Router			/v1/cities/favorite/{id} [delete].
func (h *FavoritesHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		worldsdk.ErrInvalidToken.WriteError(w)
		return
	}

	cityID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		worldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.CityService.RemoveFavorite(ctx, userID, cityID); err != nil {
		log.Error("remove favorite failed", "user_id", userID, "city_id", cityID, "err", err)
		worldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.SuccessResponse{Success: true})
}

// HandleList returns the authenticated user's favorite cities.
//
//	@Summary		List favorites
//	@Description	Returns the user's favorite cities, ordered capital-first then by name.
//	@Tags			Cities
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	worldsdk.CitiesResponse
//	@Failure		401	{object}	worldsdk.APIError	"Invalid or missing token"
//	@Failure		500	{object}	worldsdk.APIError	"Internal server error"
//	@Router			/v1/cities/favorites [get].
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		worldsdk.ErrInvalidToken.WriteError(w)
		return
	}

	cities, err := h.CityService.Favorites(ctx, userID)
	if err != nil {
		log.Error("favorites listing failed", "user_id", userID, "err", err)
		worldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, citiesResponse(cities))
}
