package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/internal/server/store"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

type ProfileHandler struct {
	AuthService *service.AuthService
}

// HandleGet returns the authenticated user's profile.
//
//	@Summary		Get profile
//	@Description	Returns the authenticated user.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	worldsdk.UserResponse	"id, phone, first_name, last_name, yandex_id"
//	@Failure		401	{object}	worldsdk.APIError		"Invalid or missing token"
//	@Failure		500	{object}	worldsdk.APIError		"Internal server error"
//	@Router			/v1/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		worldsdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.AuthService.Profile(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		worldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.UserResponse{
		ID:        user.ID,
		Phone:     user.Phone,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		YandexID:  user.YandexID,
	})
}

// HandlePut replaces the editable profile fields.
//
//	@Summary		Update profile
//	@Description	Replaces first name, last name and phone.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		worldsdk.ProfileUpdateRequest	true	"first_name, last_name, phone"
//	@Success		200		{object}	worldsdk.SuccessResponse
//	@Failure		400		{object}	worldsdk.APIError	"Malformed body or empty phone"
//	@Failure		401		{object}	worldsdk.APIError	"Invalid or missing token"
//	@Failure		500		{object}	worldsdk.APIError	"Internal server error"
//	@Router			/v1/profile [put].
func (h *ProfileHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		worldsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req worldsdk.ProfileUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		worldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	err := h.AuthService.UpdateProfile(ctx, userID, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			worldsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, store.ErrAlreadyExists):
			// another account already holds the requested phone
			worldsdk.ErrInvalidRequest.WriteError(w)
		default:
			log.Error("profile update failed", "user_id", userID, "err", err)
			worldsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.SuccessResponse{Success: true})
}
