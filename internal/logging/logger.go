// Package logging defines the minimal structured-logging interface used
// across the project, decoupling callers from the concrete backend.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs, e.g.:
//
//	log.Info(ctx, "notes loaded", "count", len(notes))
type Logger interface {
	// Debug logs fine-grained diagnostics.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key–value pairs.
	With(args ...any) Logger
}
