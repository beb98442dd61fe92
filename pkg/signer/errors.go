package signer

import "errors"

// ErrInvalidMessage is the single failure returned by Verify. Malformed
// structure and MAC mismatch are intentionally indistinguishable.
var ErrInvalidMessage = errors.New("signer: invalid message")
