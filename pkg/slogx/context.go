package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger carried by ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithBuildID tags every record logged through ctx with the build ID.
func WithBuildID(ctx context.Context, buildID string) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With("build_id", buildID))
}
