package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Session performs authenticated calls on behalf of one logged-in user.
type Session struct {
	client      *Client
	accessToken string
}

// AccessToken returns the bearer token this session authenticates with.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// Logout revokes the session's access token on the server. The session must
// not be used afterwards.
func (s *Session) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/auth/logout", LogoutRequest{
		AccessToken: s.accessToken,
	}, s.accessToken, http.StatusOK, nil)
}

// ResetPassword changes the account password and revokes the current token.
func (s *Session) ResetPassword(ctx context.Context, newPassword string) error {
	return s.client.do(ctx, http.MethodPost, "/auth/reset-password", ResetPasswordRequest{
		AccessToken: s.accessToken,
		Password:    newPassword,
	}, s.accessToken, http.StatusOK, nil)
}

// CreateBucketlist creates a bucketlist owned by the session's user.
func (s *Session) CreateBucketlist(ctx context.Context, name string) (Bucketlist, error) {
	var out Bucketlist
	err := s.client.do(ctx, http.MethodPost, "/bucketlists", BucketlistRequest{
		Name: name,
	}, s.accessToken, http.StatusCreated, &out)
	return out, err
}

// ListBucketlists fetches one page of the user's bucketlists. A non-empty
// query filters by name substring. Page numbering starts at 1; limit and
// page fall back to server defaults when zero.
func (s *Session) ListBucketlists(ctx context.Context, query string, page, limit int) (BucketlistPage, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if page > 0 {
		params.Set("page", fmt.Sprintf("%d", page))
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}
	path := "/bucketlists"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out BucketlistPage
	err := s.client.do(ctx, http.MethodGet, path, nil, s.accessToken, http.StatusOK, &out)
	return out, err
}

// GetBucketlist fetches a single bucketlist with its items.
func (s *Session) GetBucketlist(ctx context.Context, id int64) (Bucketlist, error) {
	var out Bucketlist
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/bucketlists/%d", id), nil, s.accessToken, http.StatusOK, &out)
	return out, err
}

// RenameBucketlist updates a bucketlist's name.
func (s *Session) RenameBucketlist(ctx context.Context, id int64, name string) (Bucketlist, error) {
	var out Bucketlist
	err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/bucketlists/%d", id), BucketlistRequest{
		Name: name,
	}, s.accessToken, http.StatusOK, &out)
	return out, err
}

// DeleteBucketlist removes a bucketlist and all of its items.
func (s *Session) DeleteBucketlist(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/bucketlists/%d", id), nil, s.accessToken, http.StatusOK, nil)
}

// AddItem appends an item to a bucketlist.
func (s *Session) AddItem(ctx context.Context, bucketlistID int64, name string) (Item, error) {
	var out Item
	err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("/bucketlists/%d/items", bucketlistID), ItemRequest{
		Name: name,
	}, s.accessToken, http.StatusCreated, &out)
	return out, err
}

// ListItems fetches all items in a bucketlist.
func (s *Session) ListItems(ctx context.Context, bucketlistID int64) ([]Item, error) {
	var out []Item
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/bucketlists/%d/items", bucketlistID), nil, s.accessToken, http.StatusOK, &out)
	return out, err
}

// GetItem fetches a single item from a bucketlist.
func (s *Session) GetItem(ctx context.Context, bucketlistID, itemID int64) (Item, error) {
	var out Item
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/bucketlists/%d/items/%d", bucketlistID, itemID), nil, s.accessToken, http.StatusOK, &out)
	return out, err
}

// RenameItem updates an item's name.
func (s *Session) RenameItem(ctx context.Context, bucketlistID, itemID int64, name string) (Item, error) {
	var out Item
	err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/bucketlists/%d/items/%d", bucketlistID, itemID), ItemRequest{
		Name: name,
	}, s.accessToken, http.StatusOK, &out)
	return out, err
}

// DeleteItem removes an item from a bucketlist.
func (s *Session) DeleteItem(ctx context.Context, bucketlistID, itemID int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/bucketlists/%d/items/%d", bucketlistID, itemID), nil, s.accessToken, http.StatusOK, nil)
}
