// Package signer authenticates byte messages with HMAC-SHA256.
//
// Token format: base64url(message).base64url(mac), with an untruncated
// 32-byte MAC. The MAC check uses constant-time comparison to avoid
// timing side channels, and Verify collapses every failure mode into
// ErrInvalidMessage: a caller cannot distinguish "bad format" from
// "bad signature", which denies an oracle to anyone probing tokens.
//
// # Usage
//
//	tok := signer.Sign(payload, derivedKey)
//
//	msg, err := signer.Verify(tok, derivedKey)
//	if err != nil {
//		// token was tampered with, malformed, or signed with another key
//	}
//
// The package does not interpret the message; expiry and payload
// semantics belong to pkg/token.
package signer
