package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store"
	"github.com/stretchr/testify/require"
)

func TestUserServiceRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("creates account", func(t *testing.T) {
		u, err := svc.Register(ctx, "alice@example.com", "s3cret")
		require.NoError(t, err)
		require.Positive(t, u.ID)
		require.Equal(t, "alice@example.com", u.Email)
		require.NotEmpty(t, u.PasswordHash)
		require.NotEqual(t, "s3cret", u.PasswordHash)
	})

	t.Run("normalizes email case", func(t *testing.T) {
		u, err := svc.Register(ctx, "  Bob@Example.COM ", "s3cret")
		require.NoError(t, err)
		require.Equal(t, "bob@example.com", u.Email)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice@example.com", "another")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("blank fields rejected with field map", func(t *testing.T) {
		_, err := svc.Register(ctx, "   ", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "email")
		require.Contains(t, verr.Fields, "password")
	})

	t.Run("email must look like an address", func(t *testing.T) {
		_, err := svc.Register(ctx, "not-an-email", "s3cret")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "email")
	})
}

func TestUserServiceVerifyCredentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	registered, err := svc.Register(ctx, "carol@example.com", "correct-horse")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.VerifyCredentials(ctx, "carol@example.com", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, registered.ID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.VerifyCredentials(ctx, "carol@example.com", "battery-staple")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, err := svc.VerifyCredentials(ctx, "nobody@example.com", "correct-horse")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserServiceResetPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	u, err := svc.Register(ctx, "dave@example.com", "old-pass")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, u.ID, "new-pass"))

	_, err = svc.VerifyCredentials(ctx, "dave@example.com", "old-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.VerifyCredentials(ctx, "dave@example.com", "new-pass")
	require.NoError(t, err)

	t.Run("blank password rejected", func(t *testing.T) {
		err := svc.ResetPassword(ctx, u.ID, "   ")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "password")
	})

	t.Run("unknown user id", func(t *testing.T) {
		err := svc.ResetPassword(ctx, 99999, "whatever")
		require.True(t, errors.Is(err, store.ErrNotFound))
	})
}
