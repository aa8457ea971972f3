package logger

import (
	"context"
	"log/slog"

	"agencyportal/pkg/contextkeys"
)

// WithRequestID attaches the request id to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDContextKey, requestID)
}

// GetRequestID extracts the request id, empty when absent.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.RequestIDContextKey).(string)
	return id
}

// FromContext builds a logger carrying the context's request id.
func FromContext(ctx context.Context) *slog.Logger {
	log := GetLogger()
	if requestID := GetRequestID(ctx); requestID != "" {
		log = log.With("request_id", requestID)
	}
	return log
}
