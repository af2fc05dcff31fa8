package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithNode tags the context logger with the widget being worked on.
func WithNode(ctx context.Context, name, class string) context.Context {
	l := FromContext(ctx).With().Str("node", name).Str("class", class).Logger()
	return WithContext(ctx, l)
}

// WithPath tags the context logger with an interface or catalog file.
func WithPath(ctx context.Context, path string) context.Context {
	l := FromContext(ctx).With().Str("path", path).Logger()
	return WithContext(ctx, l)
}
