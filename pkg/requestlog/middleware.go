package requestlog

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/demoapps/reqlog/pkg/identity"
	"github.com/demoapps/reqlog/pkg/logger"
	"github.com/demoapps/reqlog/pkg/requestid"
)

// Config configures the request logging middleware.
type Config struct {
	// Logger is the base handle request-scoped loggers are derived from.
	// Defaults to slog.Default().
	Logger *slog.Logger
	// UserHeader overrides the custom username header checked by identity
	// extraction. Defaults to identity.DefaultHeader.
	UserHeader string
}

// Middleware creates request logging middleware with default configuration.
func Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return MiddlewareWithConfig(Config{Logger: log})
}

// MiddlewareWithConfig wraps every request with a request-scoped logger.
//
// For each request it resolves the user identity, derives a logger bound
// with {user, route, method, request_id, user_agent}, stores the handle in
// the request context, and emits a "request started" event. After the
// handler returns it emits "request completed" with the response status
// and duration. A panic from the handler chain is logged as
// "request failed" and then re-raised unchanged, so the surrounding
// recovery middleware still produces the error response; the middleware
// observes failures, it never converts them.
//
// Anonymous requests carry no user field. The middleware never touches the
// request or response body.
func MiddlewareWithConfig(cfg Config) func(http.Handler) http.Handler {
	base := cfg.Logger
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			requestID := requestid.FromContext(ctx)
			if requestID == "" {
				// The requestid middleware is not mounted; generate here so
				// the started/completed pair still correlates.
				requestID = uuid.NewString()
				ctx = requestid.WithContext(ctx, requestID)
			}

			attrs := []any{
				logger.Route(r.URL.Path),
				logger.Method(r.Method),
				logger.RequestID(requestID),
				logger.UserAgent(userAgent(r)),
			}
			if user, ok := identity.ExtractHeader(r, cfg.UserHeader); ok {
				ctx = identity.WithContext(ctx, user)
				attrs = append(attrs, logger.User(user))
			}

			log := base.With(attrs...)
			ctx = WithContext(ctx, log)

			if query := r.URL.RawQuery; query != "" {
				log.InfoContext(ctx, "request started", slog.String("query", query))
			} else {
				log.InfoContext(ctx, "request started")
			}

			rec := &statusRecorder{ResponseWriter: w}

			defer func() {
				duration := time.Since(start)
				if p := recover(); p != nil {
					log.ErrorContext(ctx, "request failed",
						slog.String("error", fmt.Sprint(p)),
						slog.String("error_type", fmt.Sprintf("%T", p)),
						logger.Duration(duration),
					)
					panic(p)
				}
				log.InfoContext(ctx, "request completed",
					logger.StatusCode(rec.Status()),
					logger.Duration(duration),
				)
			}()

			next.ServeHTTP(rec, r.WithContext(ctx))
		})
	}
}

func userAgent(r *http.Request) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}
	return "unknown"
}

// statusRecorder captures the response status without altering the body.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.status == 0 {
		rec.status = code
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return rec.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer so http.ResponseController can
// reach Flush and friends through the recorder.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// Status returns the recorded status code, defaulting to 200 when the
// handler wrote nothing explicit.
func (rec *statusRecorder) Status() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}
