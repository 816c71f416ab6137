package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "bucketlist-test"

func newTestHS256(t *testing.T) *HS256 {
	t.Helper()
	return NewHS256([]byte("test-secret-at-least-32-bytes-long!!"), testIssuer)
}

func TestHS256_RoundTrip(t *testing.T) {
	h := newTestHS256(t)

	token, err := h.IssueAt(42, DefaultAccessTokenTTL, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := h.Verify(token)
	require.NoError(t, err)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
	require.Equal(t, testIssuer, claims.Issuer)
	require.NotEmpty(t, claims.ID, "jti should be set")
}

func TestHS256_UniquePerIssue(t *testing.T) {
	h := newTestHS256(t)

	t1, err := h.IssueAt(7, DefaultAccessTokenTTL, time.Now())
	require.NoError(t, err)
	t2, err := h.IssueAt(7, DefaultAccessTokenTTL, time.Now())
	require.NoError(t, err)

	require.NotEqual(t, t1, t2, "same principal, same second, distinct tokens")
}

func TestHS256_Expired(t *testing.T) {
	h := newTestHS256(t)

	// Minted ten minutes in the past with a five minute TTL.
	token, err := h.IssueAt(1, DefaultAccessTokenTTL, time.Now().Add(-10*time.Minute))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256_NotYetValid(t *testing.T) {
	h := newTestHS256(t)

	claims := NewAccessClaims(1, testIssuer, DefaultAccessTokenTTL, time.Now())
	claims.NotBefore = jwt.NewNumericDate(time.Now().Add(time.Hour))

	token, err := h.Sign(claims)
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrNotYetValid)
}

func TestHS256_BadSignature(t *testing.T) {
	h := newTestHS256(t)
	other := NewHS256([]byte("a-completely-different-secret-value!"), testIssuer)

	token, err := other.IssueAt(1, DefaultAccessTokenTTL, time.Now())
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256_Malformed(t *testing.T) {
	h := newTestHS256(t)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := h.Verify(tok)
		require.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestHS256_TamperedPayload(t *testing.T) {
	h := newTestHS256(t)

	token, err := h.IssueAt(1, DefaultAccessTokenTTL, time.Now())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "xx"

	_, err = h.Verify(strings.Join(parts, "."))
	require.Error(t, err)
}

func TestHS256_IssuerMismatch(t *testing.T) {
	h := newTestHS256(t)
	other := NewHS256([]byte("test-secret-at-least-32-bytes-long!!"), "someone-else")

	token, err := other.IssueAt(1, DefaultAccessTokenTTL, time.Now())
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestClaims_SubjectID_Invalid(t *testing.T) {
	c := Claims{}
	c.Subject = "not-a-number"
	_, err := c.SubjectID()
	require.ErrorIs(t, err, ErrInvalidClaim)

	c.Subject = "-4"
	_, err = c.SubjectID()
	require.ErrorIs(t, err, ErrInvalidClaim)
}
