package store

import (
	"context"
	"errors"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Bucketlists() Bucketlists
	Items() Items

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns the assigned id.
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during login. Matching is byte-exact; callers
	// normalize emails (trim, lowercase) before storing or looking up.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdatePasswordHash overwrites password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error
}

type Bucketlists interface {
	// CreateBucketlist inserts a bucketlist and returns the assigned id.
	// Returns ErrAlreadyExists when the owner already has one by that name.
	CreateBucketlist(ctx context.Context, b domain.Bucketlist) (int64, error)

	// GetBucketlist fetches a bucketlist by id, scoped to its owner. An id
	// belonging to another user behaves exactly like a missing one.
	GetBucketlist(ctx context.Context, userID, id int64) (domain.Bucketlist, error)

	// ListBucketlists returns the owner's bucketlists ordered newest first.
	// A non-empty query filters by case-insensitive substring match on name.
	ListBucketlists(ctx context.Context, userID int64, query string, limit, offset int) ([]domain.Bucketlist, error)

	// CountBucketlists returns the total row count the same filter would match.
	CountBucketlists(ctx context.Context, userID int64, query string) (int64, error)

	// RenameBucketlist updates the name and bumps updated_at.
	RenameBucketlist(ctx context.Context, userID, id int64, name string) error

	// DeleteBucketlist cascades to items (per schema).
	DeleteBucketlist(ctx context.Context, userID, id int64) error
}

type Items interface {
	// CreateItem inserts an item and returns the assigned id.
	// Returns ErrAlreadyExists when the bucketlist already has one by that name.
	CreateItem(ctx context.Context, it domain.Item) (int64, error)

	// GetItem fetches an item scoped to its bucketlist.
	GetItem(ctx context.Context, bucketlistID, id int64) (domain.Item, error)

	// ListItems returns all items in a bucketlist, oldest first.
	ListItems(ctx context.Context, bucketlistID int64) ([]domain.Item, error)

	// RenameItem updates the name and bumps updated_at.
	RenameItem(ctx context.Context, bucketlistID, id int64, name string) error

	// DeleteItem removes a single item.
	DeleteItem(ctx context.Context, bucketlistID, id int64) error
}
