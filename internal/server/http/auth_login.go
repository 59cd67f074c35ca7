package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles phone login.
//
//	@Summary		Login by phone
//	@Description	Mints a session for an already-registered phone. Unknown phones answer 404
//	@Description	so the client can steer the user to registration instead.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		worldsdk.LoginRequest	true	"phone"
//	@Success		200		{object}	worldsdk.TokenResponse	"token, user_id"
//	@Failure		400		{object}	worldsdk.APIError		"Malformed body or empty phone"
//	@Failure		404		{object}	worldsdk.APIError		"Phone not registered"
//	@Failure		500		{object}	worldsdk.APIError		"Internal server error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req worldsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		worldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, userID, err := h.AuthService.Login(ctx, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			worldsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			worldsdk.ErrUserNotFound.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			worldsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.TokenResponse{Token: token, UserID: userID})
}
