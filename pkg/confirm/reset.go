package confirm

import (
	"log/slog"

	"github.com/signkit/signkit/pkg/token"
)

// NewPasswordResetConfirmation builds the password-reset variant: the
// guard passes only when the user has an outstanding reset request.
// A valid token for a user who never requested a reset is suspicious,
// so that path logs at warning level and reports the default error.
func NewPasswordResetConfirmation(ks token.KeySource, store UserStore, cfg Config, opts ...Option) *Workflow {
	cfg = cfg.withDefaults()
	guard := func(u User) *guardFailure {
		if !timestampSet(u[KeyResetRequestedAt]) {
			return &guardFailure{
				level:   slog.LevelWarn,
				reason:  "no reset token found",
				message: cfg.Messages.DefaultError,
			}
		}
		return nil
	}
	return newWorkflow("password_reset", ks, store, cfg, guard, opts...)
}
