package token_test

import (
	"testing"

	"github.com/signkit/signkit/pkg/keyder"
	"github.com/signkit/signkit/pkg/token"
)

func BenchmarkSign(b *testing.B) {
	svc := token.New()
	data := map[string]any{"email": "bench@example.com"}

	for i := 0; i < b.N; i++ {
		_ = svc.Sign(testSecret, data)
	}
}

func BenchmarkVerify(b *testing.B) {
	svc := token.New()
	tok := svc.Sign(testSecret, map[string]any{"email": "bench@example.com"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Verify(testSecret, tok); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify_CachedKey(b *testing.B) {
	svc := token.New(token.WithKeyCache(keyder.NewCache(16)))
	tok := svc.Sign(testSecret, map[string]any{"email": "bench@example.com"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Verify(testSecret, tok); err != nil {
			b.Fatal(err)
		}
	}
}
