package http

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/mkrupp/hirepulse-client/internal/infra/logging"
)

// rescue runs fn and logs instead of propagating a panic raised by it.
// The unauthorized handler is caller-supplied code; a panic there must not
// replace the Unauthorized error returned to the caller.
func rescue(ctx context.Context, log logging.Logger, what string, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			log.ErrorContext(ctx, what+" panic", slog.Group("error",
				"panic", p,
				"stack", string(debug.Stack()),
			))
		}
	}()

	fn()
}
