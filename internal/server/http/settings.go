package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

type SettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleGet returns the user's settings.
//
//	@Summary		Get settings
//	@Description	Returns the authenticated user's display settings. A user who never saved
//	@Description	anything gets the defaults.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	worldsdk.SettingsResponse	"theme, weather_city, timezone_mode, notifications_enabled"
//	@Failure		401	{object}	worldsdk.APIError			"Invalid or missing token"
//	@Failure		500	{object}	worldsdk.APIError			"Internal server error"
//	@Router			/v1/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		worldsdk.ErrInvalidToken.WriteError(w)
		return
	}

	settings, err := h.SettingsService.Get(ctx, userID)
	if err != nil {
		log.Error("settings fetch failed", "user_id", userID, "err", err)
		worldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.SettingsResponse{
		Theme:                settings.Theme,
		WeatherCity:          settings.WeatherCity,
		TimezoneMode:         settings.TimezoneMode,
		NotificationsEnabled: settings.NotificationsEnabled,
	})
}

// HandlePut applies a partial settings update.
//
//	@Summary		Update settings
//	@Description	Partial update: fields absent from the body keep their stored values, so
//	@Description	clients can send just the field they changed.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		worldsdk.SettingsUpdateRequest	true	"Any subset of theme, weather_city, timezone_mode, notifications_enabled"
//	@Success		200		{object}	worldsdk.SuccessResponse
//	@Failure		400		{object}	worldsdk.APIError	"Malformed body or unknown timezone_mode"
//	@Failure		401		{object}	worldsdk.APIError	"Invalid or missing token"
//	@Failure		500		{object}	worldsdk.APIError	"Internal server error"
//	@Router			/v1/settings [put].
func (h *SettingsHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		worldsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req worldsdk.SettingsUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		worldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	patch := domain.SettingsPatch{
		Theme:                req.Theme,
		WeatherCity:          req.WeatherCity,
		TimezoneMode:         req.TimezoneMode,
		NotificationsEnabled: req.NotificationsEnabled,
	}

	if err := h.SettingsService.Update(ctx, userID, patch); err != nil {
		if errors.Is(err, service.ErrInvalidTimezoneMode) {
			worldsdk.ErrInvalidTimezoneMode.WriteError(w)
			return
		}
		log.Error("settings update failed", "user_id", userID, "err", err)
		worldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.SuccessResponse{Success: true})
}
