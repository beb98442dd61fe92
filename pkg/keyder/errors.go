package keyder

import "errors"

var (
	ErrSecretTooShort    = errors.New("keyder: secret too short")
	ErrKeyTooShort       = errors.New("keyder: requested key length too short")
	ErrUnsupportedDigest = errors.New("keyder: unsupported digest")
)
