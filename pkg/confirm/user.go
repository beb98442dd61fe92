package confirm

import (
	"context"
	"time"
)

// User is the embedding application's user record. The workflow only
// reads an identifier for logging and the guard timestamps; everything
// else passes through untouched apart from configured key stripping.
type User map[string]any

// Well-known user record keys read by the workflow.
const (
	KeyID               = "id"
	KeyConfirmedAt      = "confirmed_at"
	KeyResetRequestedAt = "reset_requested_at"
)

// ID returns the user identifier for log context, or nil.
func (u User) ID() any {
	if u == nil {
		return nil
	}
	return u[KeyID]
}

// strip returns a copy of the user with the given keys removed.
func (u User) strip(keys []string) User {
	out := make(User, len(u))
	for k, v := range u {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// timestampSet reports whether a timestamp-ish value is present. Nil,
// empty strings, and zero time values all count as unset so the guards
// work with whatever representation the embedding application stores.
func timestampSet(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case time.Time:
		return !t.IsZero()
	case *time.Time:
		return t != nil && !t.IsZero()
	default:
		return true
	}
}

// UserStore is the injected lookup capability. GetBy resolves a user by
// arbitrary attributes (typically the data embedded in the confirmation
// token). A missing user may be reported either as a nil User or as an
// error; the workflow treats both the same way.
type UserStore interface {
	GetBy(ctx context.Context, attrs map[string]any) (User, error)
}
