package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Stable error codes shared between server and client.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeInvalidToken   = "invalid_token"
	ErrorCodeAlreadyExists  = "already_exists"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeServerError    = "server_error"
)

// APIError represents a non-2xx response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Fields      []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Description)
}

// IsNotFound reports whether the server answered 404.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsUnauthenticated reports whether the server answered 401.
func (e *APIError) IsUnauthenticated() bool { return e.StatusCode == http.StatusUnauthorized }

// IsConflict reports whether the server answered 409.
func (e *APIError) IsConflict() bool { return e.StatusCode == http.StatusConflict }

// errorFromResponse builds an APIError from a non-2xx response body.
func errorFromResponse(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		apiErr.Description = "failed to read error response"
		return apiErr
	}

	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		apiErr.Description = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Code = er.Error
	apiErr.Description = er.ErrorDescription
	apiErr.Fields = er.Fields
	return apiErr
}
