package apiclient

import "time"

// ErrorResponse is the standard error body for every non-2xx response.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g. "invalid_request",
	// "invalid_token", "already_exists", "not_found", "server_error")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Fields names the offending request fields for validation errors
	Fields []string `json:"fields,omitempty"`
}

// RegisterResponse is returned from POST /auth/register.
type RegisterResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// LoginResponse is returned from POST /auth/login.
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// MessageResponse is returned from logout, reset-password and deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// Bucketlist is a single bucketlist. Items is only populated on
// single-resource reads.
type Bucketlist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Items     []Item    `json:"items,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is a single entry inside a bucketlist.
type Item struct {
	ID           int64     `json:"id"`
	BucketlistID int64     `json:"bucketlist_id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BucketlistPage is one page of a bucketlist listing.
type BucketlistPage struct {
	Bucketlists []Bucketlist `json:"bucketlists"`
	Page        int          `json:"page"`
	Limit       int          `json:"limit"`
	Total       int64        `json:"total"`
}

// HealthResponse is returned from the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}

/* Request bodies */

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogoutRequest carries the token to revoke. The field mirrors older clients
// that sent the token in the body instead of the Authorization header.
type LogoutRequest struct {
	AccessToken string `json:"access_token,omitempty"`
}

type ResetPasswordRequest struct {
	AccessToken string `json:"access_token,omitempty"`
	Password    string `json:"password"`
}

type BucketlistRequest struct {
	Name string `json:"name"`
}

type ItemRequest struct {
	Name string `json:"name"`
}
