package logtrace

import (
	"context"

	"github.com/google/uuid"
)

// private type used to define context keys
type ctxKey int

const correlationIDKey ctxKey = iota

// CtxWithCorrelationID returns a new context carrying the given correlation ID.
func CtxWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CtxWithNewCorrelationID tags the context with a freshly generated
// correlation ID, one per CLI invocation.
func CtxWithNewCorrelationID(ctx context.Context) context.Context {
	return CtxWithCorrelationID(ctx, uuid.NewString())
}

// CorrelationIDFromContext extracts the correlation ID, or "" when unset.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}
