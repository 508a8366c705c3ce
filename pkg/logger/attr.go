package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// User records the authenticated username under the key "user".
// If user is empty, it returns an empty Attr so anonymous requests carry
// no user field at all.
func User(user string) slog.Attr {
	if user == "" {
		return slog.Attr{}
	}
	return slog.String("user", user)
}

// RequestID records the request correlation identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Route records the request path under the key "route".
func Route(route string) slog.Attr {
	return slog.String("route", route)
}

// Method records the HTTP method under the key "method".
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// UserAgent records the client user agent under the key "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}

// StatusCode records the HTTP response status under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.String("duration", d.String())
}
