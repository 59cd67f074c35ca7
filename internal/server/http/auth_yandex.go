package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/pkg/httpx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
	"github.com/aussiebroadwan/timeworld/pkg/worldsdk"
)

type YandexCallbackHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP completes the Yandex OAuth code flow.
//
//	@Summary		Yandex OAuth callback
//	@Description	Exchanges the authorization code against the Yandex token endpoint, fetches
//	@Description	the profile, upserts the user by Yandex id and mints a session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		worldsdk.YandexCallbackRequest	true	"code"
//	@Success		200		{object}	worldsdk.TokenResponse			"token, user_id"
//	@Failure		400		{object}	worldsdk.APIError				"Malformed body or empty code"
//	@Failure		502		{object}	worldsdk.APIError				"Provider exchange failed"
//	@Failure		500		{object}	worldsdk.APIError				"Internal server error"
//	@Router			/v1/auth/yandex/callback [post].
func (h *YandexCallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req worldsdk.YandexCallbackRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		worldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, userID, err := h.AuthService.YandexCallback(ctx, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			worldsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrOAuthExchange):
			log.Warn("yandex exchange failed", "err", err)
			worldsdk.ErrOAuthExchange.WriteError(w)
		default:
			log.Error("yandex callback failed", "err", err)
			worldsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, worldsdk.TokenResponse{Token: token, UserID: userID})
}
