package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

// Strict decoding rejects non-zero trailing padding bits; without it a
// token could be malleable in the unused bits of its final character.
var b64 = base64.RawURLEncoding.Strict()

// Sign wraps message in an opaque token string carrying an HMAC-SHA256
// MAC computed with key: base64url(message) + "." + base64url(mac).
func Sign(message, key []byte) string {
	messageEnc := b64.EncodeToString(message)
	macEnc := b64.EncodeToString(mac(message, key))
	return messageEnc + "." + macEnc
}

// Verify checks the token's MAC against key and returns the embedded
// message. Every failure - wrong part count, bad encoding, MAC mismatch -
// yields the same ErrInvalidMessage so callers cannot tell a malformed
// token from a forged one.
func Verify(token string, key []byte) ([]byte, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, ErrInvalidMessage
	}

	message, err := b64.DecodeString(parts[0])
	if err != nil {
		return nil, ErrInvalidMessage
	}

	got, err := b64.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidMessage
	}

	if subtle.ConstantTimeCompare(got, mac(message, key)) != 1 {
		return nil, ErrInvalidMessage
	}

	return message, nil
}

func mac(message, key []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(message)
	return h.Sum(nil)
}
