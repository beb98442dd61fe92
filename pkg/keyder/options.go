package keyder

import "fmt"

// Digest selects the hash function used by the key derivation function.
type Digest string

const (
	// DigestSHA256 is the default digest.
	DigestSHA256 Digest = "sha256"
	// DigestSHA512 trades speed for a larger internal state.
	DigestSHA512 Digest = "sha512"
)

// Derivation defaults. The iteration count is deliberately an expensive
// starting point for brute-force resistance; tune it per deployment.
const (
	DefaultIterations = 1000
	DefaultKeyLength  = 32
)

// MinSecretLength and MinKeyLength are the hard floors below which
// derivation refuses to run. Shorter values indicate deployment
// misconfiguration, not attacker input.
const (
	MinSecretLength = 20
	MinKeyLength    = 20
)

// Options configures a key derivation. Zero values take the package
// defaults; values below the hard floors cause Derive to panic.
type Options struct {
	Iterations uint
	KeyLength  uint
	Digest     Digest
}

// withDefaults fills zero values with package defaults.
func (o Options) withDefaults() Options {
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.KeyLength == 0 {
		o.KeyLength = DefaultKeyLength
	}
	if o.Digest == "" {
		o.Digest = DigestSHA256
	}
	return o
}

// validate panics on configuration errors. Misconfigured key material
// must fail loudly rather than degrade into a recoverable auth failure.
func (o Options) validate() {
	if o.KeyLength < MinKeyLength {
		panic(fmt.Errorf("%w: %d bytes, need at least %d", ErrKeyTooShort, o.KeyLength, MinKeyLength))
	}
	switch o.Digest {
	case DigestSHA256, DigestSHA512:
	default:
		panic(fmt.Errorf("%w: %q", ErrUnsupportedDigest, o.Digest))
	}
}
