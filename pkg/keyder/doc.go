// Package keyder derives fixed-length cryptographic keys from an
// application secret and a salt using PBKDF2.
//
// Derivation is deterministic and deliberately expensive (iterated
// hashing, 1000 rounds by default) to resist brute-force recovery of the
// secret from a derived key. The digest is restricted to SHA-256 and
// SHA-512.
//
// Configuration errors - a secret or requested key length below 20
// bytes, or an unknown digest - panic at the call site. They indicate a
// deployment bug and are intentionally not recoverable.
//
// # Usage
//
//	key := keyder.Derive([]byte(secretKeyBase), "token salt", keyder.Options{})
//
// Because sign and verify both derive on every call, hot paths can wrap
// derivation in a Cache:
//
//	kc := keyder.NewCache(128)
//	key := kc.Derive([]byte(secretKeyBase), "token salt", keyder.Options{})
//
// A cached key is byte-identical to a fresh derivation; the cache is a
// performance optimization only.
package keyder
