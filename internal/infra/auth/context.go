package auth

import "context"

type contextKey struct{}

var sessionKey contextKey

// WithSession stores the session on the request context for downstream handlers.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom returns the session stored by the auth middleware, or nil.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey).(*Session)
	return s
}
