package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Attribute keys for the request-scoped IDs.
const (
	RequestIDKey     = "request_id"
	CorrelationIDKey = "correlation_id"
	TraceIDKey       = "trace_id"
)

var defaultLogger = slog.Default()

// FromContext returns the request logger, or the default logger when ctx
// carries none.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, nil)
}

// FromContextOr is FromContext with fallback in place of the default logger.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	if fallback != nil {
		return fallback
	}

	return defaultLogger
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithRequestID tags every later log line of the request with its ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return with(ctx, RequestIDKey, id)
}

// WithCorrelationID tags the request logger with the caller's correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return with(ctx, CorrelationIDKey, id)
}

// WithTraceID tags the request logger with the OpenTelemetry trace ID.
func WithTraceID(ctx context.Context, id string) context.Context {
	return with(ctx, TraceIDKey, id)
}

func with(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(key, value)))
}

// SetDefault replaces both the package fallback and slog's default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
