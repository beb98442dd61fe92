package confirm

import (
	"log/slog"

	"github.com/signkit/signkit/pkg/token"
)

// NewAccountConfirmation builds the account-activation variant: the
// guard passes only while the user's confirmation timestamp is unset.
// Re-confirming an already confirmed account reports the configured
// "already confirmed" message and logs at info level - a repeat click on
// a confirmation link is expected behavior, not an attack signal.
func NewAccountConfirmation(ks token.KeySource, store UserStore, cfg Config, opts ...Option) *Workflow {
	cfg = cfg.withDefaults()
	guard := func(u User) *guardFailure {
		if timestampSet(u[KeyConfirmedAt]) {
			return &guardFailure{
				level:   slog.LevelInfo,
				reason:  "user already confirmed",
				message: cfg.Messages.AlreadyConfirmed,
			}
		}
		return nil
	}
	return newWorkflow("account_confirmation", ks, store, cfg, guard, opts...)
}
