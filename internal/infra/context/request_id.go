package context

import (
	"context"
)

type contextKey string

const contextKeyRequestID = contextKey("requestID")

// RequestIDFromContext returns the outbound request ID stored in ctx.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(contextKeyRequestID).(string)

	return requestID, ok && requestID != ""
}

// WithRequestID returns a context carrying requestID. The transport sends it
// as the X-Request-ID header and log records pick it up.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}
