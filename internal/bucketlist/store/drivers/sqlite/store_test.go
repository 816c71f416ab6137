package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/domain"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func createUser(t *testing.T, s *Store, email string) int64 {
	t.Helper()

	id, err := s.Users().CreateUser(context.Background(), domain.User{
		Email:        email,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return id
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUniqueConstraintsMapToAlreadyExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	userID := createUser(t, s, "dup@example.com")

	_, err := s.Users().CreateUser(ctx, domain.User{Email: "dup@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Bucketlists().CreateBucketlist(ctx, domain.Bucketlist{UserID: userID, Name: "Same"})
	require.NoError(t, err)
	_, err = s.Bucketlists().CreateBucketlist(ctx, domain.Bucketlist{UserID: userID, Name: "Same"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestZeroRowWritesMapToNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	userID := createUser(t, s, "rows@example.com")

	require.ErrorIs(t, s.Users().UpdatePasswordHash(ctx, 99999, "x"), store.ErrNotFound)
	require.ErrorIs(t, s.Bucketlists().RenameBucketlist(ctx, userID, 99999, "x"), store.ErrNotFound)
	require.ErrorIs(t, s.Bucketlists().DeleteBucketlist(ctx, userID, 99999), store.ErrNotFound)
	require.ErrorIs(t, s.Items().DeleteItem(ctx, 99999, 1), store.ErrNotFound)
}

func TestForeignKeyCascade(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	userID := createUser(t, s, "cascade@example.com")

	listID, err := s.Bucketlists().CreateBucketlist(ctx, domain.Bucketlist{UserID: userID, Name: "Doomed"})
	require.NoError(t, err)
	itemID, err := s.Items().CreateItem(ctx, domain.Item{BucketlistID: listID, Name: "Orphan-to-be"})
	require.NoError(t, err)

	require.NoError(t, s.Bucketlists().DeleteBucketlist(ctx, userID, listID))

	_, err = s.Items().GetItem(ctx, listID, itemID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommitsAndRollsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	t.Run("commit on success", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Users().CreateUser(ctx, domain.User{Email: "committed@example.com", PasswordHash: "x"})
			return err
		})
		require.NoError(t, err)

		_, err = s.Users().GetUserByEmail(ctx, "committed@example.com")
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Users().CreateUser(ctx, domain.User{Email: "ghost@example.com", PasswordHash: "x"}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Users().GetUserByEmail(ctx, "ghost@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListOrderingAndFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	userID := createUser(t, s, "order@example.com")

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := s.Bucketlists().CreateBucketlist(ctx, domain.Bucketlist{UserID: userID, Name: name})
		require.NoError(t, err)
	}

	lists, err := s.Bucketlists().ListBucketlists(ctx, userID, "", 10, 0)
	require.NoError(t, err)
	require.Len(t, lists, 3)
	// Newest first.
	require.Equal(t, "Gamma", lists[0].Name)
	require.Equal(t, "Alpha", lists[2].Name)

	filtered, err := s.Bucketlists().ListBucketlists(ctx, userID, "et", 10, 0)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "Beta", filtered[0].Name)

	n, err := s.Bucketlists().CountBucketlists(ctx, userID, "et")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}
