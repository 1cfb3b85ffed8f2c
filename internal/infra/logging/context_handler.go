package logging

import (
	"context"
	"log/slog"

	context_ "github.com/mkrupp/hirepulse-client/internal/infra/context"
)

// ContextHandler adds the outbound request ID carried by the context to
// every record before passing it on.
type ContextHandler struct {
	next slog.Handler
}

var _ slog.Handler = (*ContextHandler)(nil)

// NewContextHandler wraps next.
func NewContextHandler(next slog.Handler) *ContextHandler {
	return &ContextHandler{next: next}
}

// Handle implements slog.Handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if requestID, ok := context_.RequestIDFromContext(ctx); ok {
		r.AddAttrs(slog.Group("request", slog.String("id", requestID)))
	}

	//nolint:wrapcheck
	return h.next.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) Handler {
	return NewContextHandler(h.next.WithAttrs(attrs))
}

// WithGroup implements slog.Handler.
func (h *ContextHandler) WithGroup(name string) Handler {
	return NewContextHandler(h.next.WithGroup(name))
}

// Enabled implements slog.Handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}
