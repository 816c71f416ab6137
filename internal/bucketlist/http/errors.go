package http

import (
	"errors"
	"net/http"
	"sort"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store"
	"github.com/kawerewagaba/bucketlist/pkg/apiclient"
	"github.com/kawerewagaba/bucketlist/pkg/httpx"
	"github.com/kawerewagaba/bucketlist/pkg/jwtx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"
)

// writeServiceError maps service/store errors onto the wire error body. The
// description for 5xx is deliberately generic: internal error text never
// reaches clients.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, apiclient.ErrorResponse{
			Error:            apiclient.ErrorCodeInvalidRequest,
			ErrorDescription: "one or more fields failed validation",
			Fields:           sortedFields(verr),
		})

	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteJSON(w, http.StatusConflict, apiclient.ErrorResponse{
			Error:            apiclient.ErrorCodeAlreadyExists,
			ErrorDescription: "a resource with that name already exists",
		})

	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, apiclient.ErrorResponse{
			Error:            apiclient.ErrorCodeNotFound,
			ErrorDescription: "resource not found",
		})

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, apiclient.ErrorResponse{
			Error:            apiclient.ErrorCodeInvalidRequest,
			ErrorDescription: "verify credentials and try again",
		})

	case errors.Is(err, service.ErrTokenRevoked):
		writeTokenError(w, "token revoked, please log in again")

	case errors.Is(err, jwtx.ErrExpired):
		writeTokenError(w, "token expired, please log in again")

	case errors.Is(err, jwtx.ErrMalformed),
		errors.Is(err, jwtx.ErrInvalidSig),
		errors.Is(err, jwtx.ErrNotYetValid),
		errors.Is(err, jwtx.ErrIssuer),
		errors.Is(err, jwtx.ErrInvalidClaim):
		writeTokenError(w, "token verification failed")

	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, apiclient.ErrorResponse{
			Error:            apiclient.ErrorCodeServerError,
			ErrorDescription: "something went wrong",
		})
	}
}

// writeBadRequest reports an undecodable or structurally invalid body.
func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, apiclient.ErrorResponse{
		Error:            apiclient.ErrorCodeInvalidRequest,
		ErrorDescription: desc,
	})
}

func writeTokenError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	httpx.WriteJSON(w, http.StatusUnauthorized, apiclient.ErrorResponse{
		Error:            apiclient.ErrorCodeInvalidToken,
		ErrorDescription: desc,
	})
}

// sortedFields returns the offending field names in a stable order.
func sortedFields(verr *service.ValidationError) []string {
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
