package service

import (
	"context"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/domain"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store"
)

// ItemService owns item CRUD inside a single bucketlist. Every operation
// first resolves the bucketlist through the owner scope, so a foreign or
// missing bucketlist id yields store.ErrNotFound before any item is touched.
type ItemService struct {
	Store store.Store
}

// Add appends an item to the user's bucketlist. Returns
// store.ErrAlreadyExists when the bucketlist already has an item by that name.
func (s *ItemService) Add(ctx context.Context, userID, bucketlistID int64, name string) (domain.Item, error) {
	name, err := validateName(name)
	if err != nil {
		return domain.Item{}, err
	}

	b, err := s.Store.Bucketlists().GetBucketlist(ctx, userID, bucketlistID)
	if err != nil {
		return domain.Item{}, err
	}

	id, err := s.Store.Items().CreateItem(ctx, domain.Item{
		BucketlistID: b.ID,
		Name:         name,
	})
	if err != nil {
		return domain.Item{}, err
	}

	return s.Store.Items().GetItem(ctx, b.ID, id)
}

// List returns all items in the user's bucketlist, oldest first.
func (s *ItemService) List(ctx context.Context, userID, bucketlistID int64) ([]domain.Item, error) {
	b, err := s.Store.Bucketlists().GetBucketlist(ctx, userID, bucketlistID)
	if err != nil {
		return nil, err
	}
	return s.Store.Items().ListItems(ctx, b.ID)
}

// Get fetches one item from the user's bucketlist.
func (s *ItemService) Get(ctx context.Context, userID, bucketlistID, itemID int64) (domain.Item, error) {
	b, err := s.Store.Bucketlists().GetBucketlist(ctx, userID, bucketlistID)
	if err != nil {
		return domain.Item{}, err
	}
	return s.Store.Items().GetItem(ctx, b.ID, itemID)
}

// Rename changes an item's name and returns the updated record.
func (s *ItemService) Rename(ctx context.Context, userID, bucketlistID, itemID int64, name string) (domain.Item, error) {
	name, err := validateName(name)
	if err != nil {
		return domain.Item{}, err
	}

	b, err := s.Store.Bucketlists().GetBucketlist(ctx, userID, bucketlistID)
	if err != nil {
		return domain.Item{}, err
	}

	if err := s.Store.Items().RenameItem(ctx, b.ID, itemID, name); err != nil {
		return domain.Item{}, err
	}

	return s.Store.Items().GetItem(ctx, b.ID, itemID)
}

// Delete removes one item from the user's bucketlist.
func (s *ItemService) Delete(ctx context.Context, userID, bucketlistID, itemID int64) error {
	b, err := s.Store.Bucketlists().GetBucketlist(ctx, userID, bucketlistID)
	if err != nil {
		return err
	}
	return s.Store.Items().DeleteItem(ctx, b.ID, itemID)
}
