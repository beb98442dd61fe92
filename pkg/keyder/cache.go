package keyder

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/signkit/signkit/pkg/cache"
)

// Cache memoizes derived keys per (secret, salt, options) tuple.
// Derivation is deliberately expensive and runs on every sign and verify
// call in the naive design; the cache amortizes that cost. Correctness
// does not depend on it: a cache hit and a fresh derivation are
// byte-identical.
type Cache struct {
	lru *cache.LRU[string, []byte]
}

// NewCache creates a derived-key cache holding up to capacity keys.
func NewCache(capacity int) *Cache {
	return &Cache{lru: cache.NewLRU[string, []byte](capacity)}
}

// Derive returns the cached key for the tuple, deriving and storing it
// on a miss. Panics propagate from Derive for invalid inputs.
func (c *Cache) Derive(secret []byte, salt string, opts Options) []byte {
	opts = opts.withDefaults()
	key := cacheKey(secret, salt, opts)

	if derived, ok := c.lru.Get(key); ok {
		return clone(derived)
	}

	derived := Derive(secret, salt, opts)
	c.lru.Put(key, derived)
	return clone(derived)
}

// cacheKey fingerprints the secret instead of embedding it, so plaintext
// key material is not retained in the cache index.
func cacheKey(secret []byte, salt string, opts Options) string {
	sum := sha256.Sum256(secret)
	return fmt.Sprintf("%s|%s|%d|%d|%s", hex.EncodeToString(sum[:]), salt, opts.Iterations, opts.KeyLength, opts.Digest)
}

// clone hands out copies so callers cannot mutate the cached key.
func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
