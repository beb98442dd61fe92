// Package confirm turns a received signed token into a verified,
// guard-checked user action: account activation or password-reset
// authorization.
//
// Both variants share one workflow - extract the token from the request
// parameters, verify it (20-minute validity, fixed for this path),
// resolve the decoded attributes to a user through an injected UserStore,
// then apply a guard predicate - and differ only in the guard:
//
//   - NewAccountConfirmation succeeds while confirmed_at is unset;
//     an already confirmed account reports the configured
//     "already confirmed" message.
//   - NewPasswordResetConfirmation succeeds while reset_requested_at is
//     set; a user with no outstanding reset reports the default error.
//
// Every failure path - bad token, unknown user, rejected guard - returns
// one of the two configured messages and nothing else. Which step failed
// is recorded in the structured log only, so callers cannot be used as
// an oracle for enumerating accounts or probing token state. Successful
// confirmations strip the configured sensitive keys from the returned
// user record.
//
// # Usage
//
//	var cfg confirm.Config
//	config.MustLoad(&cfg)
//
//	wf := confirm.NewAccountConfirmation(
//		token.Secret(secretKeyBase),
//		userStore,
//		cfg,
//		confirm.WithLogger(log),
//	)
//
//	user, err := wf.Confirm(ctx, map[string]any{"key": req.Token})
//
// The request map must contain the "key" field; its absence is a caller
// contract violation and panics.
package confirm
