package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signkit/signkit/pkg/token"
)

const (
	connSecret     = "conn-secret-key-base-0123456789"
	endpointSecret = "endpoint-secret-key-base-012345"
)

func TestKeySource_ResolutionPriority(t *testing.T) {
	t.Parallel()

	svc := token.New()
	endpoint := &token.Endpoint{Name: "MyApp.Endpoint", SecretKeyBase: endpointSecret}

	t.Run("conn secret wins over endpoint", func(t *testing.T) {
		t.Parallel()

		ks := token.Conn{SecretKeyBase: connSecret, Endpoint: endpoint}
		tok := svc.Sign(ks, "data", fastKey())

		// The token verifies with the connection secret, not the endpoint's.
		_, err := svc.Verify(token.Secret(connSecret), tok, fastKey())
		require.NoError(t, err)

		_, err = svc.Verify(token.Secret(endpointSecret), tok, fastKey())
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("conn falls back to endpoint", func(t *testing.T) {
		t.Parallel()

		ks := token.Conn{Endpoint: endpoint}
		tok := svc.Sign(ks, "data", fastKey())

		_, err := svc.Verify(token.Secret(endpointSecret), tok, fastKey())
		require.NoError(t, err)
	})

	t.Run("bare endpoint", func(t *testing.T) {
		t.Parallel()

		tok := svc.Sign(*endpoint, "data", fastKey())

		_, err := svc.Verify(token.Secret(endpointSecret), tok, fastKey())
		require.NoError(t, err)
	})

	t.Run("raw secret", func(t *testing.T) {
		t.Parallel()

		tok := svc.Sign(token.Secret(connSecret), "data", fastKey())

		_, err := svc.Verify(token.Secret(connSecret), tok, fastKey())
		require.NoError(t, err)
	})
}

func TestKeySource_UnresolvedEndpointPanics(t *testing.T) {
	t.Parallel()

	svc := token.New()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, token.ErrMissingSecret)
		// The panic names the endpoint that lacks a secret.
		assert.Contains(t, err.Error(), "MyApp.Endpoint")
	}()

	svc.Sign(token.Endpoint{Name: "MyApp.Endpoint"}, "data", fastKey())
}

func TestKeySource_EmptyConnPanics(t *testing.T) {
	t.Parallel()

	svc := token.New()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, token.ErrMissingSecret)
	}()

	svc.Sign(token.Conn{}, "data", fastKey())
}

func TestKeySource_NilPanics(t *testing.T) {
	t.Parallel()

	svc := token.New()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, token.ErrMissingSecret)
	}()

	svc.Sign(nil, "data", fastKey())
}
