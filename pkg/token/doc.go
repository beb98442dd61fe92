// Package token issues and verifies signed, self-contained,
// time-bounded tokens without server-side storage.
//
// A token is an opaque string produced by MAC-signing a canonically
// serialized payload (arbitrary data plus an expiry timestamp) with a
// key derived from an application secret via pkg/keyder. Verification
// reverses the flow and adds the expiry check.
//
// # Key sources
//
// Sign and Verify accept the secret polymorphically through a closed
// KeySource union: a raw Secret string, an Endpoint carrying a
// configured secret_key_base, or a Conn holding an explicit secret or an
// endpoint reference. Resolution failures and secrets shorter than 20
// bytes panic - they are deployment bugs, not recoverable auth failures.
//
// # Usage
//
//	svc := token.New(token.WithDefaultSalt(cfg.TokenSalt))
//
//	tok := svc.Sign(token.Secret(secretKeyBase), map[string]any{"email": email})
//
//	data, err := svc.Verify(token.Secret(secretKeyBase), tok)
//	switch {
//	case errors.Is(err, token.ErrExpiredToken):
//		// ask the user to request a fresh token
//	case err != nil:
//		// tampered, malformed, or signed with different key material
//	}
//
// Verification errors collapse to exactly ErrExpiredToken and
// ErrInvalidToken. Expired-vs-tampered is the only distinction exposed;
// richer detail would hand attackers an oracle for probing token state.
//
// The same key-derivation options (salt, iterations, key length, digest)
// must be supplied on both sides; a mismatch verifies like a wrong key.
package token
