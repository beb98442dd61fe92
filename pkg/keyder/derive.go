package keyder

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// Derive stretches secret and salt into a key of opts.KeyLength bytes
// using PBKDF2. It is a deterministic, pure function of its inputs: the
// same (secret, salt, opts) tuple always yields the same key.
//
// Derive panics when the secret is shorter than MinSecretLength, the
// requested key length is shorter than MinKeyLength, or the digest is
// not one of the supported values. These are configuration errors and
// must surface at the call site, never as a verification failure.
func Derive(secret []byte, salt string, opts Options) []byte {
	if len(secret) < MinSecretLength {
		panic(fmt.Errorf("%w: %d bytes, need at least %d", ErrSecretTooShort, len(secret), MinSecretLength))
	}

	opts = opts.withDefaults()
	opts.validate()

	return pbkdf2.Key(secret, []byte(salt), int(opts.Iterations), int(opts.KeyLength), hashFunc(opts.Digest))
}

func hashFunc(d Digest) func() hash.Hash {
	switch d {
	case DigestSHA512:
		return sha512.New
	default:
		return sha256.New
	}
}
