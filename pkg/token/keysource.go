package token

import "fmt"

// KeySource yields the secret that signing keys are derived from.
// The set of supported shapes is closed: a raw Secret, an Endpoint
// holding a configured secret key base, or a Conn referencing either.
type KeySource interface {
	keySource()
}

// Secret is a raw secret string used directly as key material.
type Secret string

func (Secret) keySource() {}

// Endpoint identifies an application endpoint whose configuration holds
// the secret key base. Name appears in the panic message when the
// endpoint has no secret configured.
type Endpoint struct {
	Name          string
	SecretKeyBase string
}

func (Endpoint) keySource() {}

// Conn is a connection-like source: an explicit secret key base set on
// the connection, or a reference to the endpoint that served it.
type Conn struct {
	SecretKeyBase string
	Endpoint      *Endpoint
}

func (Conn) keySource() {}

// resolveSecret unwraps a KeySource into the raw secret. Resolution
// priority is fixed: an explicit connection secret wins, then the
// connection's endpoint, then a bare endpoint, then a raw secret string.
// A source that cannot produce a secret is a deployment error and
// panics; length validation happens at derivation time.
func resolveSecret(ks KeySource) string {
	switch v := ks.(type) {
	case Conn:
		if v.SecretKeyBase != "" {
			return v.SecretKeyBase
		}
		if v.Endpoint != nil {
			return endpointSecret(*v.Endpoint)
		}
		panic(fmt.Errorf("%w: connection has neither secret_key_base nor endpoint", ErrMissingSecret))
	case Endpoint:
		return endpointSecret(v)
	case Secret:
		return string(v)
	default:
		panic(fmt.Errorf("%w: nil key source", ErrMissingSecret))
	}
}

func endpointSecret(e Endpoint) string {
	if e.SecretKeyBase == "" {
		panic(fmt.Errorf("%w: endpoint %q has no secret_key_base configured", ErrMissingSecret, e.Name))
	}
	return e.SecretKeyBase
}
