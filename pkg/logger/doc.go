// Package logger provides a small factory around log/slog plus typed
// attribute helpers for consistent structured logging across the module.
//
// # Usage
//
//	log := logger.New(
//		logger.WithService("confirm"),
//		logger.WithFormat(logger.FormatJSON),
//	)
//	log.Info("user confirmed",
//		logger.UserID(userID),
//		logger.Component("confirm"),
//	)
//
// The attribute helpers (Error, UserID, Component, Event, Reason, Meta)
// keep log keys uniform so downstream aggregation can rely on them.
// Helpers return an empty Attr for nil inputs, which slog drops silently.
//
// Services in this module default to logger.Discard when no logger is
// injected, so logging is always optional at call sites.
package logger
