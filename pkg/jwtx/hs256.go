package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can mint signed tokens.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
// Failures are classified: callers present different user-facing messages
// for expired, malformed and badly-signed tokens.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256 signs and verifies tokens with a single symmetric secret. There is no
// key rotation; the secret lives for the process lifetime.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 builds a Signer/Verifier around the server-held secret.
func NewHS256(secret []byte, issuer string) *HS256 {
	return &HS256{secret: secret, issuer: issuer}
}

// Sign encodes and signs the claims with HMAC-SHA256.
func (h *HS256) Sign(c Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(h.secret)
}

// Verify decodes the token, checks the signature against the shared secret
// and validates expiry and issuer. The returned error distinguishes expiry
// from signature failure from structural garbage.
func (h *HS256) Verify(token string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) { return h.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return Claims{}, classifyParseError(err)
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// classifyParseError maps golang-jwt's joined errors onto our sentinel set.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return ErrMalformed
	}
}

// IssueAt mints a token for the given principal with the supplied clock.
// Tests use a past "now" to produce already-expired tokens.
func (h *HS256) IssueAt(subject int64, ttl time.Duration, now time.Time) (string, error) {
	return h.Sign(NewAccessClaims(subject, h.issuer, ttl, now))
}
