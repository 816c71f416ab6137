package service

import (
	"errors"
	"time"

	"github.com/kawerewagaba/bucketlist/pkg/jwtx"
)

var (
	// ErrInvalidCredentials is returned when an email/password pair does not
	// match a stored account. Deliberately vague so callers can't probe which
	// half was wrong.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrTokenRevoked marks tokens that were explicitly invalidated.
	ErrTokenRevoked = errors.New("token_revoked")
)

// TokenService mints and revokes HMAC-signed access tokens. Verification on
// the request path lives in the authentication middleware; this service owns
// issuance and the revocation side of the lifecycle.
type TokenService struct {
	Tokens      *jwtx.HS256
	Revocations *RevocationList
	AccessTTL   time.Duration
}

// Issue mints an access token for the given user.
func (s *TokenService) Issue(userID int64) (string, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	return s.Tokens.IssueAt(userID, ttl, time.Now())
}

// Revoke invalidates a token for the remainder of its lifetime. The token
// must still verify: revoking a forged or expired token would let anyone
// grow the revocation list with garbage.
func (s *TokenService) Revoke(token string) error {
	if s.Revocations.IsRevoked(token) {
		return ErrTokenRevoked
	}

	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.AccessTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	s.Revocations.Revoke(token, expiresAt)
	return nil
}

// Authenticate verifies a token end to end: revocation first, then
// signature, expiry and issuer, and finally the subject claim. Returns the
// authenticated user id.
func (s *TokenService) Authenticate(token string) (int64, error) {
	if s.Revocations.IsRevoked(token) {
		return 0, ErrTokenRevoked
	}

	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return 0, err
	}

	return claims.SubjectID()
}
