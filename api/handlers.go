package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/demoapps/reqlog/pkg/identity"
	"github.com/demoapps/reqlog/pkg/requestid"
	"github.com/demoapps/reqlog/pkg/requestlog"
	"github.com/demoapps/reqlog/pkg/response"
)

func root(w http.ResponseWriter, r *http.Request) {
	requestlog.FromRequest(r).InfoContext(r.Context(), "root endpoint accessed")
	_ = response.Message(w, http.StatusOK, "Welcome to the structured logging demo")
}

func hello(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	requestlog.FromRequest(r).InfoContext(r.Context(), "hello endpoint accessed",
		slog.String("target_name", name))
	_ = response.Message(w, http.StatusOK, "Hello, "+name+"!")
}

// protected is a convention only: the identity schemes are advisory and
// the route stays reachable without credentials.
func protected(w http.ResponseWriter, r *http.Request) {
	requestlog.FromRequest(r).InfoContext(r.Context(), "protected endpoint accessed")
	_ = response.JSON(w, http.StatusOK, map[string]string{
		"message": "This is a protected resource",
		"status":  "authenticated",
	})
}

func userInfo(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		user = "anonymous"
	}

	requestlog.FromRequest(r).InfoContext(r.Context(), "user info requested",
		slog.String("requested_user", user))

	_ = response.JSON(w, http.StatusOK, map[string]any{
		"user":       user,
		"request_id": requestid.FromContext(r.Context()),
		"path":       r.URL.Path,
		"method":     r.Method,
	})
}

// simulateError raises an unhandled failure on purpose so the request
// logger's failure path and the outer recoverer can be observed.
func simulateError(w http.ResponseWriter, r *http.Request) {
	requestlog.FromRequest(r).WarnContext(r.Context(), "error simulation requested")
	panic(errors.New("simulated error for testing logging"))
}

func health(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestlog.FromRequest(r).DebugContext(r.Context(), "health check performed")
		_ = response.JSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": service,
		})
	}
}
