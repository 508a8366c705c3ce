package requestlog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/demoapps/reqlog/pkg/logger"
	"github.com/demoapps/reqlog/pkg/requestid"
	"github.com/demoapps/reqlog/pkg/requestlog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEvents parses the buffer as one JSON record per line.
func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		events = append(events, entry)
	}
	return events
}

// recoverTo500 stands in for the outer transport layer that converts
// panics into error responses.
func recoverTo500(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("emits started and completed in order with same request id", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		handler := requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/things", nil)
		req.Header.Set("User-Agent", "test-agent/1.0")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		events := decodeEvents(t, buf)
		require.Len(t, events, 2)

		started, completed := events[0], events[1]
		assert.Equal(t, "request started", started["event"])
		assert.Equal(t, "request completed", completed["event"])

		require.NotEmpty(t, started["request_id"])
		assert.Equal(t, started["request_id"], completed["request_id"])

		for _, e := range events {
			assert.Equal(t, "/things", e["route"])
			assert.Equal(t, http.MethodGet, e["method"])
			assert.Equal(t, "test-agent/1.0", e["user_agent"])
		}
		assert.Equal(t, float64(http.StatusOK), completed["status_code"])
		assert.NotEmpty(t, completed["duration"])
	})

	t.Run("binds user from custom header", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		handler := requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/hello/world", nil)
		req.Header.Set("X-User-Name", "alice")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		events := decodeEvents(t, buf)
		require.Len(t, events, 2)
		for _, e := range events {
			assert.Equal(t, "alice", e["user"])
			assert.Equal(t, "/hello/world", e["route"])
		}
	})

	t.Run("anonymous request carries no user field", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		handler := requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		events := decodeEvents(t, buf)
		require.Len(t, events, 2)
		for _, e := range events {
			assert.NotContains(t, e, "user")
		}
		assert.Equal(t, float64(http.StatusNoContent), events[1]["status_code"])
	})

	t.Run("panicking handler emits failed event and re-raises", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		handler := recoverTo500(requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("simulated failure")
		})))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/simulate-error", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		events := decodeEvents(t, buf)
		require.Len(t, events, 2)
		assert.Equal(t, "request started", events[0]["event"])

		failed := events[1]
		assert.Equal(t, "request failed", failed["event"])
		assert.Equal(t, "error", failed["level"])
		assert.Equal(t, "simulated failure", failed["error"])
		assert.Equal(t, "string", failed["error_type"])
		assert.NotEmpty(t, failed["duration"])
		assert.Equal(t, events[0]["request_id"], failed["request_id"])
	})

	t.Run("reuses request id from the requestid middleware", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		handler := requestid.Middleware(requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "req-12345")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		events := decodeEvents(t, buf)
		require.Len(t, events, 2)
		for _, e := range events {
			assert.Equal(t, "req-12345", e["request_id"])
		}
	})

	t.Run("missing user agent logged as unknown", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		handler := requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		events := decodeEvents(t, buf)
		require.NotEmpty(t, events)
		assert.Equal(t, "unknown", events[0]["user_agent"])
	})

	t.Run("query string logged on started event only", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		handler := requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/search?q=logs", nil))

		events := decodeEvents(t, buf)
		require.Len(t, events, 2)
		assert.Equal(t, "q=logs", events[0]["query"])
		assert.NotContains(t, events[1], "query")
	})

	t.Run("handler events carry the bound context", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		handler := requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestlog.FromRequest(r).InfoContext(r.Context(), "domain event",
				slog.String("target_name", "world"))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/hello/world", nil)
		req.Header.Set("X-User-Name", "alice")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		events := decodeEvents(t, buf)
		require.Len(t, events, 3)

		domain := events[1]
		assert.Equal(t, "domain event", domain["event"])
		assert.Equal(t, "world", domain["target_name"])
		assert.Equal(t, "alice", domain["user"])
		assert.Equal(t, events[0]["request_id"], domain["request_id"])
	})

	t.Run("flush reaches the underlying writer through the recorder", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		handler := requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("chunk"))
			require.NoError(t, http.NewResponseController(w).Flush())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stream", nil))

		assert.True(t, rec.Flushed)
	})

	t.Run("custom user header configuration", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		mw := requestlog.MiddlewareWithConfig(requestlog.Config{
			Logger:     log,
			UserHeader: "X-Forwarded-User",
		})
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-User", "proxyuser")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		events := decodeEvents(t, buf)
		require.NotEmpty(t, events)
		assert.Equal(t, "proxyuser", events[0]["user"])
	})
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("falls back to default logger with request fields", func(t *testing.T) {
		buf := &bytes.Buffer{}
		prev := slog.Default()
		defer slog.SetDefault(prev)
		logger.SetAsDefault(logger.New(logger.WithOutput(buf)))

		req := httptest.NewRequest(http.MethodGet, "/orphan", nil)
		requestlog.FromRequest(req).Info("no middleware")

		events := decodeEvents(t, buf)
		require.Len(t, events, 1)
		assert.Equal(t, "/orphan", events[0]["route"])
		assert.Equal(t, http.MethodGet, events[0]["method"])
		assert.NotContains(t, events[0], "user")
	})
}
