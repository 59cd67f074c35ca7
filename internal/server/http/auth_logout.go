package http

import (
	"net/http"

	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

type LogoutHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP revokes the current session.
//
//	@Summary		Logout
//	@Description	Deletes the session behind the presented token, invalidating it immediately.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	worldsdk.SuccessResponse
//	@Failure		401	{object}	worldsdk.APIError	"Invalid or missing token"
//	@Failure		500	{object}	worldsdk.APIError	"Internal server error"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sessionID, ok := httpx.SessionIDFromContext(ctx)
	if !ok {
		worldsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.TokenService.RevokeSession(ctx, sessionID); err != nil {
		log.Error("logout failed", "session_id", sessionID, "err", err)
		worldsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.SuccessResponse{Success: true})
}
