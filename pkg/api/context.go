package api

import "context"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const contextKeyRequestID contextKey = "requestID"

// RequestIDFrom returns the request id stored by the request id middleware
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}
