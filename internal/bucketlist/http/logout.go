package http

import (
	"net/http"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/pkg/apiclient"
	"github.com/kawerewagaba/bucketlist/pkg/httpx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"
)

// LogoutHandler serves POST /auth/logout. The token to revoke may arrive in
// the access_token body field or as the Authorization bearer; the body wins
// when both are present.
type LogoutHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Log out
//	@Description	Revokes the presented token for the remainder of its lifetime.
//	@Description	Other tokens for the same account stay valid.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apiclient.LogoutRequest	false	"Token to revoke; falls back to the Authorization header"
//	@Success		200		{object}	apiclient.MessageResponse
//	@Failure		401		{object}	apiclient.ErrorResponse	"Invalid, expired or already revoked token"
//	@Router			/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := tokenFromRequest(r)
	if token == "" {
		writeTokenError(w, "missing bearer token")
		return
	}

	if err := h.TokenService.Revoke(token); err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("user logged out")
	httpx.WriteJSON(w, http.StatusOK, apiclient.MessageResponse{
		Message: "You logged out successfully.",
	})
}

// tokenFromRequest prefers the access_token body field over the
// Authorization header.
func tokenFromRequest(r *http.Request) string {
	var req apiclient.LogoutRequest
	if err := httpx.DecodeJSON(r, &req); err == nil && req.AccessToken != "" {
		return req.AccessToken
	}
	return httpx.ExtractBearerToken(r)
}
