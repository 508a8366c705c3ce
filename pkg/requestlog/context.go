package requestlog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/demoapps/reqlog/pkg/logger"
)

type contextKey struct{}

// WithContext stores the request-scoped logger handle in the context.
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext returns the request-scoped logger, or slog.Default() when
// the middleware is not mounted.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
			return log
		}
	}
	return slog.Default()
}

// FromRequest returns the request-scoped logger for r. For routes served
// without the middleware it falls back to the default logger bound with
// the request's route and method, so handler events still carry minimal
// request context.
func FromRequest(r *http.Request) *slog.Logger {
	if log, ok := r.Context().Value(contextKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default().With(
		logger.Route(r.URL.Path),
		logger.Method(r.Method),
	)
}
