package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/demoapps/reqlog/pkg/environment"
	"github.com/demoapps/reqlog/pkg/logger"
	"github.com/demoapps/reqlog/pkg/requestid"
	"github.com/demoapps/reqlog/pkg/requestlog"
)

// Config carries the HTTP surface configuration.
type Config struct {
	// ServiceName is reported by the health endpoint.
	ServiceName string
	// Environment tags request contexts when set.
	Environment environment.Environment
	// UserHeader overrides the custom username header; empty means the
	// identity package default.
	UserHeader string
}

// Router assembles the demo API. Middleware order matters: the request ID
// is assigned first, the recoverer sits outside the request logger so a
// logged "request failed" panic still becomes a 500 response, and the
// request logger wraps every route.
func Router(log *slog.Logger, cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	if cfg.Environment != "" {
		r.Use(environment.Middleware(cfg.Environment))
	}
	r.Use(middleware.Recoverer)
	r.Use(requestlog.MiddlewareWithConfig(requestlog.Config{
		Logger:     logger.Named(log, "api"),
		UserHeader: cfg.UserHeader,
	}))

	r.Get("/", root)
	r.Get("/hello/{name}", hello)
	r.Get("/protected", protected)
	r.Get("/user-info", userInfo)
	r.Post("/simulate-error", simulateError)
	r.Get("/health", health(cfg.ServiceName))

	return r
}
