package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the bucketlist service. It provides the unauthenticated
// operations and creates authenticated Sessions from login tokens.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password string) (RegisterResponse, error) {
	var out RegisterResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", RegisterRequest{
		Email:    email,
		Password: password,
	}, "", http.StatusCreated, &out)
	return out, err
}

// Login exchanges credentials for an access token and returns an
// authenticated Session on success.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	}, "", http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return c.Session(out.AccessToken), nil
}

// Session wraps an access token for authenticated calls. Use this directly
// when you already hold a token from a previous login.
func (c *Client) Session(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// Health calls the liveness endpoint.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, "", http.StatusOK, &out)
	return out, err
}

// do performs a JSON request and decodes the response into out when the
// status matches wantStatus; any other status becomes an *APIError.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	bearer string,
	wantStatus int,
	out any,
) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("apiclient: failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: failed to decode response: %w", err)
	}
	return nil
}
