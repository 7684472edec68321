// Package ctxlog carries a scoped *slog.Logger through context.Context so
// the parse pipeline can emit debug logs without any global state.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to avoid collisions with context keys elsewhere.
type key struct{}

var loggerKey = key{}

// WithLogger returns a context with the given logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context. A library must cope
// with callers passing a bare context, so absence falls back to the
// process default logger rather than failing.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
