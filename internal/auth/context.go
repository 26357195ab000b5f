package auth

import "context"

// ctxKey is a private type for context keys to prevent collisions.
type ctxKey int

const adminIDKey ctxKey = iota

// WithAdminID stores the authenticated administrator ID in the context.
func WithAdminID(ctx context.Context, adminID int64) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

// AdminIDFromContext retrieves the authenticated administrator ID.
// Returns 0 if the request was not authenticated.
func AdminIDFromContext(ctx context.Context) int64 {
	if v := ctx.Value(adminIDKey); v != nil {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
