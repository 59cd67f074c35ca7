package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles phone registration.
//
//	@Summary		Register by phone
//	@Description	Creates a user keyed by phone number (or refreshes the name fields of an
//	@Description	existing one), ensures a default settings row exists, and mints a session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		worldsdk.RegisterRequest	true	"phone, first_name, last_name"
//	@Success		200		{object}	worldsdk.TokenResponse		"token, user_id"
//	@Failure		400		{object}	worldsdk.APIError			"Malformed body or empty phone"
//	@Failure		500		{object}	worldsdk.APIError			"Internal server error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req worldsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		worldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, userID, err := h.AuthService.Register(ctx, req.Phone, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			worldsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		log.Error("register failed", "err", err)
		worldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.TokenResponse{Token: token, UserID: userID})
}
