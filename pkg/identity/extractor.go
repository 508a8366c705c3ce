package identity

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor that injects the resolved
// username under the "user" key. Anonymous requests contribute no attribute.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if user, ok := FromContext(ctx); ok {
			return slog.String("user", user), true
		}
		return slog.Attr{}, false
	}
}
