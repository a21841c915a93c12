// Package logging is the structured logger shared by the API server, the
// gRPC health service and the admin tool. SlogLogger backs it with
// log/slog; tests substitute their own recorders.
package logging

import "context"

// Logger takes a message plus alternating key/value pairs:
//
//	log.Info(ctx, "http request", "method", r.Method, "status", 201)
//
// Passwords, hashes and tokens must never be passed as values.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every entry, e.g.
	// log.With("module", "rest").
	With(args ...any) Logger
}
