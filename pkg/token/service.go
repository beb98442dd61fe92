package token

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/signkit/signkit/pkg/keyder"
	"github.com/signkit/signkit/pkg/signer"
)

// Service signs and verifies self-contained tokens. It is stateless
// apart from an optional derived-key cache and is safe for concurrent
// use.
type Service struct {
	salt  string
	cache *keyder.Cache
	now   func() time.Time
}

// ServiceOption configures a Service during construction.
type ServiceOption func(*Service)

// WithDefaultSalt sets the process-wide key-derivation salt used when a
// call does not supply WithSalt.
func WithDefaultSalt(salt string) ServiceOption {
	return func(s *Service) { s.salt = salt }
}

// WithKeyCache enables derived-key caching. A cached key is identical to
// a fresh derivation, so behavior is unchanged; only latency is.
func WithKeyCache(c *keyder.Cache) ServiceOption {
	return func(s *Service) { s.cache = c }
}

// WithNowFunc overrides the clock, primarily for expiry tests.
func WithNowFunc(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a token service.
func New(opts ...ServiceOption) *Service {
	s := &Service{
		salt: DefaultSalt,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign encodes data into a signed, time-bounded token. The expiry is
// now + max age, fixed at signing time. Sign does not fail for
// well-formed inputs; an unresolvable or too-short secret panics because
// it indicates deployment misconfiguration, not attacker input.
func (s *Service) Sign(ks KeySource, data any, opts ...Option) string {
	co := s.applyOptions(opts)
	key := s.deriveKey(ks, co)

	p := payload{
		ID:   uuid.NewString(),
		Data: data,
		Exp:  s.now().Add(co.maxAge).Unix(),
	}

	return signer.Sign(encodePayload(p), key)
}

// Verify checks tok against the key derived from ks with the supplied
// options, which must match the ones used at signing time. It returns
// the embedded data, ErrExpiredToken, or ErrInvalidToken - nothing else.
// Tampering, a wrong key, mismatched derivation options, and malformed
// payloads are deliberately indistinguishable.
func (s *Service) Verify(ks KeySource, tok string, opts ...Option) (any, error) {
	// Reject structurally hopeless input before the expensive key
	// derivation runs; cheap DoS mitigation.
	if tok == "" || !strings.Contains(tok, ".") {
		return nil, ErrInvalidToken
	}

	co := s.applyOptions(opts)
	key := s.deriveKey(ks, co)

	message, err := signer.Verify(tok, key)
	if err != nil {
		return nil, ErrInvalidToken
	}

	p, err := decodePayload(message)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if p.Exp < s.now().Unix() {
		return nil, ErrExpiredToken
	}

	return p.Data, nil
}

func (s *Service) applyOptions(opts []Option) callOptions {
	co := callOptions{maxAge: DefaultMaxAge}
	for _, opt := range opts {
		opt(&co)
	}
	return co
}

func (s *Service) deriveKey(ks KeySource, co callOptions) []byte {
	secret := []byte(resolveSecret(ks))

	salt := s.salt
	if co.salt != nil {
		salt = *co.salt
	}

	if s.cache != nil {
		return s.cache.Derive(secret, salt, co.keyOpts)
	}
	return keyder.Derive(secret, salt, co.keyOpts)
}
