package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/kawerewagaba/bucketlist/pkg/jwtx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"
)

// TokenRevocations is consulted before a verified token is trusted.
type TokenRevocations interface {
	IsRevoked(token string) bool
}

// AuthnMiddleware authenticates each request: extract the bearer token,
// reject revoked ones, verify signature and expiry, and put the principal id
// into the request context. Every failure terminates in a 401; the
// description distinguishes missing, revoked, expired and malformed tokens.
func AuthnMiddleware(v jwtx.Verifier, revoked TokenRevocations) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			// A panic anywhere in the authentication path must surface as a
			// generic 401, never as an internal fault leaking to the client.
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic during authentication", "panic", rec)
					writeBearerError(w, "authentication failed")
				}
			}()

			raw := ExtractBearerToken(r)
			if raw == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			if revoked != nil && revoked.IsRevoked(raw) {
				writeBearerError(w, "token revoked, please log in again")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, describeVerifyError(err))
				log.Warn("token verify failed", "err", err)
				return
			}

			userID, err := claims.SubjectID()
			if err != nil {
				writeBearerError(w, "token verification failed")
				return
			}

			// Inject into context for downstream handlers.
			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			ctx = context.WithValue(ctx, CtxKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearerToken pulls the token out of the Authorization header. The
// canonical form is "Bearer <token>"; a bare token is tolerated for older
// clients that never sent the prefix.
func ExtractBearerToken(r *http.Request) string {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if authz == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(authz, "Bearer "); ok {
		return strings.TrimSpace(rest)
	}
	return authz
}

func describeVerifyError(err error) string {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return "token expired, please log in again"
	case errors.Is(err, jwtx.ErrInvalidSig):
		return "token signature invalid"
	case errors.Is(err, jwtx.ErrMalformed):
		return "token malformed"
	default:
		return "token verification failed"
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
