package token

import "errors"

// Recoverable verification outcomes. These messages are caller-facing
// and intentionally carry no further detail.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// ErrMissingSecret wraps fatal key-source resolution failures. It is
// only ever seen inside a panic value.
var ErrMissingSecret = errors.New("token: missing secret")
