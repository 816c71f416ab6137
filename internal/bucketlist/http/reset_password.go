package http

import (
	"net/http"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/pkg/apiclient"
	"github.com/kawerewagaba/bucketlist/pkg/httpx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"
)

// ResetPasswordHandler serves POST /auth/reset-password. The presented token
// authenticates the request and is revoked afterwards; tokens issued earlier
// for the same account are untouched.
type ResetPasswordHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Reset password
//	@Description	Replaces the account password. The presented token is revoked;
//	@Description	the caller must log in again with the new password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apiclient.ResetPasswordRequest	true	"New password; token falls back to the Authorization header"
//	@Success		200		{object}	apiclient.MessageResponse
//	@Failure		400		{object}	apiclient.ErrorResponse	"Blank password"
//	@Failure		401		{object}	apiclient.ErrorResponse	"Invalid, expired or revoked token"
//	@Router			/auth/reset-password [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.ResetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "request body must be valid JSON")
		return
	}

	token := req.AccessToken
	if token == "" {
		token = httpx.ExtractBearerToken(r)
	}
	if token == "" {
		writeTokenError(w, "missing bearer token")
		return
	}

	userID, err := h.TokenService.Authenticate(token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.UserService.ResetPassword(ctx, userID, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	// The token that authorized the reset must not remain usable.
	if err := h.TokenService.Revoke(token); err != nil {
		log.Warn("failed to revoke token after password reset", "err", err)
	}

	log.Info("password reset", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, apiclient.MessageResponse{
		Message: "Your password has been reset.",
	})
}
