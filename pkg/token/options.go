package token

import (
	"time"

	"github.com/signkit/signkit/pkg/keyder"
)

// DefaultMaxAge bounds token validity when no WithMaxAge is supplied.
const DefaultMaxAge = 4 * time.Hour

// DefaultSalt is used when the service is built without WithDefaultSalt.
const DefaultSalt = "signed token salt"

type callOptions struct {
	maxAge  time.Duration
	salt    *string
	keyOpts keyder.Options
}

// Option adjusts a single Sign or Verify call. Key-derivation options
// must match between the signing and verifying side, or verification
// fails the same way a wrong key does.
type Option func(*callOptions)

// WithMaxAge sets the validity window applied at signing time.
// It has no effect on signature validity during Verify.
func WithMaxAge(d time.Duration) Option {
	return func(o *callOptions) { o.maxAge = d }
}

// WithSalt overrides the service's default key-derivation salt.
func WithSalt(salt string) Option {
	return func(o *callOptions) { o.salt = &salt }
}

// WithKeyIterations sets the PBKDF2 iteration count.
func WithKeyIterations(n uint) Option {
	return func(o *callOptions) { o.keyOpts.Iterations = n }
}

// WithKeyLength sets the derived key length in bytes.
func WithKeyLength(n uint) Option {
	return func(o *callOptions) { o.keyOpts.KeyLength = n }
}

// WithKeyDigest sets the key-derivation digest.
func WithKeyDigest(d keyder.Digest) Option {
	return func(o *callOptions) { o.keyOpts.Digest = d }
}
