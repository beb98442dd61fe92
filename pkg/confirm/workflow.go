package confirm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/signkit/signkit/pkg/logger"
	"github.com/signkit/signkit/pkg/token"
)

// RequestKeyField is the request parameter carrying the token. The
// embedding application must guarantee it exists before invoking the
// workflow; its absence panics as a contract violation.
const RequestKeyField = "key"

// TokenMaxAge is the validity window for confirmation tokens. It
// overrides any caller-supplied max age on this path.
const TokenMaxAge = 20 * time.Minute

// guardFailure is the one varying outcome between workflow variants.
type guardFailure struct {
	level   slog.Level
	reason  string
	message string
}

type guardFunc func(u User) *guardFailure

// Workflow drives a received token through verification, user lookup,
// and a variant-specific guard, reporting a uniform success or failure.
// Construct one with NewAccountConfirmation or
// NewPasswordResetConfirmation.
type Workflow struct {
	component string
	tokens    *token.Service
	source    token.KeySource
	store     UserStore
	cfg       Config
	log       *slog.Logger
	guard     guardFunc
	tokenOpts []token.Option
}

// Option configures a workflow during construction.
type Option func(*Workflow)

// WithLogger sets the structured log sink. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Workflow) {
		if l != nil {
			w.log = l
		}
	}
}

// WithTokenService injects a preconfigured token service, e.g. one with
// a derived-key cache or a test clock.
func WithTokenService(svc *token.Service) Option {
	return func(w *Workflow) {
		if svc != nil {
			w.tokens = svc
		}
	}
}

// WithTokenOptions appends per-call verification options. Key-derivation
// options must match the ones the tokens were signed with.
func WithTokenOptions(opts ...token.Option) Option {
	return func(w *Workflow) {
		w.tokenOpts = append(w.tokenOpts, opts...)
	}
}

func newWorkflow(component string, ks token.KeySource, store UserStore, cfg Config, guard guardFunc, opts ...Option) *Workflow {
	w := &Workflow{
		component: component,
		source:    ks,
		store:     store,
		cfg:       cfg,
		log:       logger.Discard(),
		guard:     guard,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.tokens == nil {
		w.tokens = token.New(token.WithDefaultSalt(cfg.TokenSalt))
	}
	return w
}

// Confirm consumes a request parameter map containing RequestKeyField,
// verifies the token, resolves the user, and applies the variant guard.
// Every failure converges to one of the two configured messages; the
// step that failed is visible only in the log.
func (w *Workflow) Confirm(ctx context.Context, params map[string]any) (User, error) {
	raw, ok := params[RequestKeyField]
	if !ok {
		panic(fmt.Errorf("%w: request params have no %q field", ErrMissingKeyField, RequestKeyField))
	}

	key, ok := raw.(string)
	if !ok {
		return w.fail(ctx, nil, "malformed request key", nil)
	}

	verifyOpts := append([]token.Option{
		token.WithMaxAge(TokenMaxAge),
		token.WithSalt(w.cfg.TokenSalt),
	}, w.tokenOpts...)

	data, err := w.tokens.Verify(w.source, key, verifyOpts...)
	if err != nil {
		return w.fail(ctx, nil, "token verification failed", err)
	}

	attrs, ok := data.(map[string]any)
	if !ok {
		return w.fail(ctx, nil, "token data is not an attribute map", nil)
	}

	user, err := w.store.GetBy(ctx, attrs)
	if err != nil || user == nil {
		return w.fail(ctx, nil, "user not found", err)
	}

	if f := w.guard(user); f != nil {
		w.log.LogAttrs(ctx, f.level, f.reason,
			logger.UserID(user.ID()),
			logger.Component(w.component),
		)
		return nil, errors.New(f.message)
	}

	w.log.LogAttrs(ctx, slog.LevelInfo, "user confirmed",
		logger.UserID(user.ID()),
		logger.Component(w.component),
	)
	return user.strip(w.cfg.DropUserKeys), nil
}

// fail logs the internal reason at warning level and hands the caller
// the generic error, denying an oracle for token or user state.
func (w *Workflow) fail(ctx context.Context, user User, reason string, err error) (User, error) {
	w.log.LogAttrs(ctx, slog.LevelWarn, reason,
		logger.UserID(user.ID()),
		logger.Component(w.component),
		logger.Error(err),
	)
	return nil, errors.New(w.cfg.Messages.DefaultError)
}
