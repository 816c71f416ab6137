package service

import (
	"context"
	"strings"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/domain"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store"
)

const (
	// DefaultPageLimit applies when a listing request doesn't specify one.
	DefaultPageLimit = 20

	// MaxPageLimit caps how many rows a single page may request.
	MaxPageLimit = 100
)

// BucketlistService owns bucketlist CRUD for a single authenticated user.
// Every operation is scoped to the owner: a foreign id is indistinguishable
// from a missing one.
type BucketlistService struct {
	Store store.Store
}

// BucketlistPage is one window of a user's bucketlists plus the total match
// count for the same filter.
type BucketlistPage struct {
	Bucketlists []domain.Bucketlist
	Page        int
	Limit       int
	Total       int64
}

// Create adds a bucketlist for the user. Returns store.ErrAlreadyExists when
// the user already has one by that name.
func (s *BucketlistService) Create(ctx context.Context, userID int64, name string) (domain.Bucketlist, error) {
	name, err := validateName(name)
	if err != nil {
		return domain.Bucketlist{}, err
	}

	id, err := s.Store.Bucketlists().CreateBucketlist(ctx, domain.Bucketlist{
		UserID: userID,
		Name:   name,
	})
	if err != nil {
		return domain.Bucketlist{}, err
	}

	return s.Store.Bucketlists().GetBucketlist(ctx, userID, id)
}

// Get fetches one bucketlist with its items loaded.
func (s *BucketlistService) Get(ctx context.Context, userID, id int64) (domain.Bucketlist, error) {
	b, err := s.Store.Bucketlists().GetBucketlist(ctx, userID, id)
	if err != nil {
		return domain.Bucketlist{}, err
	}

	items, err := s.Store.Items().ListItems(ctx, b.ID)
	if err != nil {
		return domain.Bucketlist{}, err
	}
	b.Items = items

	return b, nil
}

// List returns one page of the user's bucketlists. A non-empty query filters
// by name substring. Out-of-range page parameters are clamped rather than
// rejected.
func (s *BucketlistService) List(ctx context.Context, userID int64, query string, page domain.Page) (BucketlistPage, error) {
	if page.Limit <= 0 {
		page.Limit = DefaultPageLimit
	}
	if page.Limit > MaxPageLimit {
		page.Limit = MaxPageLimit
	}
	if page.Number <= 0 {
		page.Number = 1
	}
	query = strings.TrimSpace(query)

	lists, err := s.Store.Bucketlists().ListBucketlists(ctx, userID, query, page.Limit, page.Offset())
	if err != nil {
		return BucketlistPage{}, err
	}

	total, err := s.Store.Bucketlists().CountBucketlists(ctx, userID, query)
	if err != nil {
		return BucketlistPage{}, err
	}

	return BucketlistPage{
		Bucketlists: lists,
		Page:        page.Number,
		Limit:       page.Limit,
		Total:       total,
	}, nil
}

// Rename changes a bucketlist's name and returns the updated record.
func (s *BucketlistService) Rename(ctx context.Context, userID, id int64, name string) (domain.Bucketlist, error) {
	name, err := validateName(name)
	if err != nil {
		return domain.Bucketlist{}, err
	}

	if err := s.Store.Bucketlists().RenameBucketlist(ctx, userID, id, name); err != nil {
		return domain.Bucketlist{}, err
	}

	return s.Store.Bucketlists().GetBucketlist(ctx, userID, id)
}

// Delete removes a bucketlist and, via the schema's cascade, its items.
func (s *BucketlistService) Delete(ctx context.Context, userID, id int64) error {
	return s.Store.Bucketlists().DeleteBucketlist(ctx, userID, id)
}

// validateName trims and rejects blank names.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Fields: map[string]string{
			"name": "name must not be blank",
		}}
	}
	return name, nil
}
