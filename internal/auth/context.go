package auth

import "context"

type ctxKey struct{}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session carried by ctx. It panics when no session
// was installed: a consumer running outside the provider scope is a wiring
// defect, not a runtime condition to recover from.
func FromContext(ctx context.Context) *Session {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	if !ok {
		panic("auth: FromContext called outside a WithSession scope")
	}

	return s
}
