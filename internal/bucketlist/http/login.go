package http

import (
	"net/http"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/pkg/apiclient"
	"github.com/kawerewagaba/bucketlist/pkg/httpx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"
)

// LoginHandler serves POST /auth/login.
type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchanges an email/password pair for a short-lived bearer token.
//	@Description	Unknown email and wrong password produce the same response so the
//	@Description	endpoint can't be used to probe for accounts.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apiclient.LoginRequest	true	"Credentials"
//	@Success		200		{object}	apiclient.LoginResponse
//	@Failure		401		{object}	apiclient.ErrorResponse	"Bad credentials"
//	@Header			200		{string}	Cache-Control			"no-store"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "request body must be valid JSON")
		return
	}

	u, err := h.UserService.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.TokenService.Issue(u.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("user logged in", "user_id", u.ID)
	httpx.WriteJSON(w, http.StatusOK, apiclient.LoginResponse{
		Message:     "You logged in successfully.",
		AccessToken: token,
	})
}
