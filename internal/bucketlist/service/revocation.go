package service

import (
	"sync"
	"time"

	"github.com/kawerewagaba/bucketlist/pkg/cryptox"
)

// RevocationList tracks access tokens that were invalidated before their
// natural expiry (logout, password reset). Tokens are keyed by fingerprint
// so the raw JWT never sits in memory, and each entry carries the token's
// expiry so housekeeping can drop entries that no verifier would accept
// anyway.
type RevocationList struct {
	mu      sync.RWMutex
	revoked map[string]time.Time // fingerprint -> token expiry
}

// NewRevocationList creates an empty revocation list.
func NewRevocationList() *RevocationList {
	return &RevocationList{
		revoked: make(map[string]time.Time),
	}
}

// Revoke marks a token as invalid until expiresAt.
func (r *RevocationList) Revoke(token string, expiresAt time.Time) {
	fp := cryptox.FingerprintToken(token)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[fp] = expiresAt
}

// IsRevoked reports whether the token has been revoked. Expired entries
// still report true until pruned; the verifier rejects expired tokens
// either way, so keeping them is harmless.
func (r *RevocationList) IsRevoked(token string) bool {
	fp := cryptox.FingerprintToken(token)

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.revoked[fp]
	return ok
}

// PruneExpired removes entries whose tokens have expired on their own and
// returns the number removed.
func (r *RevocationList) PruneExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pruned int
	for fp, exp := range r.revoked {
		if now.After(exp) {
			delete(r.revoked, fp)
			pruned++
		}
	}
	return pruned
}

// Len returns the number of tracked revocations.
func (r *RevocationList) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.revoked)
}
