package http

import (
	"net/http"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/pkg/apiclient"
	"github.com/kawerewagaba/bucketlist/pkg/httpx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"
)

// RegisterHandler serves POST /auth/register.
type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account from an email and password. The password is
//	@Description	hashed server-side and never stored in the clear.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apiclient.RegisterRequest	true	"Credentials"
//	@Success		201		{object}	apiclient.RegisterResponse
//	@Failure		400		{object}	apiclient.ErrorResponse	"Validation failure, offending fields listed"
//	@Failure		409		{object}	apiclient.ErrorResponse	"Email already registered"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apiclient.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "request body must be valid JSON")
		return
	}

	u, err := h.UserService.Register(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("user registered", "user_id", u.ID)
	httpx.WriteJSON(w, http.StatusCreated, apiclient.RegisterResponse{
		ID:    u.ID,
		Email: u.Email,
	})
}
