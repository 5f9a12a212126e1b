// Package logging defines the structured-logging interface used across the
// client. Adapters exist for slog and zerolog; components depend only on the
// interface so tests can inject a silent logger.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "session saved", "user_id", u.ID)
type Logger interface {
	// Debug logs fine-grained diagnostic detail (request traces etc).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
