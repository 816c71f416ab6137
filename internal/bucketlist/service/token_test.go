package service

import (
	"testing"
	"time"

	"github.com/kawerewagaba/bucketlist/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *TokenService {
	return &TokenService{
		Tokens:      jwtx.NewHS256([]byte("test-secret"), "bucketlist-test"),
		Revocations: NewRevocationList(),
		AccessTTL:   5 * time.Minute,
	}
}

func TestTokenServiceIssueAndAuthenticate(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Authenticate(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestTokenServiceRevoke(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	first, err := svc.Issue(7)
	require.NoError(t, err)
	second, err := svc.Issue(7)
	require.NoError(t, err)

	// Same user, same second: the jti keeps the tokens distinct.
	require.NotEqual(t, first, second)

	require.NoError(t, svc.Revoke(first))

	_, err = svc.Authenticate(first)
	require.ErrorIs(t, err, ErrTokenRevoked)

	// Revoking one token never affects the other.
	userID, err := svc.Authenticate(second)
	require.NoError(t, err)
	require.Equal(t, int64(7), userID)

	t.Run("double revoke reports revoked", func(t *testing.T) {
		require.ErrorIs(t, svc.Revoke(first), ErrTokenRevoked)
	})

	t.Run("garbage tokens cannot be revoked", func(t *testing.T) {
		require.ErrorIs(t, svc.Revoke("not.a.jwt"), jwtx.ErrMalformed)
	})

	t.Run("expired tokens cannot be revoked", func(t *testing.T) {
		expired, err := svc.Tokens.IssueAt(7, time.Minute, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		require.ErrorIs(t, svc.Revoke(expired), jwtx.ErrExpired)
	})
}

func TestTokenServiceAuthenticateRejectsExpired(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	expired, err := svc.Tokens.IssueAt(9, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = svc.Authenticate(expired)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestRevocationListPruning(t *testing.T) {
	t.Parallel()

	list := NewRevocationList()
	now := time.Now()

	list.Revoke("token-a", now.Add(-time.Minute)) // already expired
	list.Revoke("token-b", now.Add(time.Hour))    // still live

	require.True(t, list.IsRevoked("token-a"))
	require.True(t, list.IsRevoked("token-b"))
	require.Equal(t, 2, list.Len())

	pruned := list.PruneExpired(now)
	require.Equal(t, 1, pruned)

	require.False(t, list.IsRevoked("token-a"))
	require.True(t, list.IsRevoked("token-b"))
	require.Equal(t, 1, list.Len())
}

func TestRevocationListConcurrentAccess(t *testing.T) {
	t.Parallel()

	list := NewRevocationList()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			list.Revoke("shared-token", time.Now().Add(time.Hour))
		}
	}()
	for i := 0; i < 1000; i++ {
		list.IsRevoked("shared-token")
	}
	<-done

	require.True(t, list.IsRevoked("shared-token"))
}
