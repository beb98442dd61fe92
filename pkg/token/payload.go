package token

import (
	"encoding/json"
	"fmt"
)

// payload is the signed wire shape. The token ID exists for log
// correlation and future replay tracking; it never affects validity.
// encoding/json sorts map keys, so equal payloads encode to identical
// bytes and signatures stay deterministic.
type payload struct {
	ID   string `json:"jti"`
	Data any    `json:"data"`
	Exp  int64  `json:"exp"`
}

// encodePayload serializes the payload. Data that cannot be marshalled
// (channels, cycles) is a caller contract violation, not a runtime
// condition, so it panics rather than returning an error.
func encodePayload(p payload) []byte {
	b, err := json.Marshal(p)
	if err != nil {
		panic(fmt.Errorf("token: encode payload: %w", err))
	}
	return b
}

// decodePayload deserializes authenticated payload bytes. Failure is
// reported to the caller, never raised: a decode error on verified input
// classifies the token as invalid.
func decodePayload(b []byte) (payload, error) {
	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		return payload{}, err
	}
	return p, nil
}
