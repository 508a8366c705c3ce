package identity

import "context"

type contextKey struct{}

// WithContext stores the resolved username in the context.
func WithContext(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// FromContext returns the username carried by the context. The boolean is
// false for anonymous requests; callers must branch on it rather than on a
// sentinel value.
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	user, ok := ctx.Value(contextKey{}).(string)
	if !ok || user == "" {
		return "", false
	}
	return user, true
}
