package requestctx

import "context"

// adminIDContextKey is the context key for the authenticated operator.
type adminIDContextKey struct{}

// sessionIDContextKey is the context key for the console session.
type sessionIDContextKey struct{}

// WithAdminID stores an operator identifier in context.
func WithAdminID(ctx context.Context, adminID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, adminIDContextKey{}, adminID)
}

// AdminIDFromContext returns the operator identifier stored in context.
func AdminIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(adminIDContextKey{}).(string)
	return value
}

// WithSessionID stores the console session identifier in context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionIDContextKey{}, sessionID)
}

// SessionIDFromContext returns the console session identifier stored in context.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(sessionIDContextKey{}).(string)
	return value
}
