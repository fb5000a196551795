package utils

import (
	"context"
	"healthease-client/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// RequestIDFromContext returns the request id stored in ctx, or a fresh one
// when the context carries none.
func RequestIDFromContext(ctx context.Context) string {
	requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		return GenerateRequestID()
	}
	return requestID
}

func ContextWithRequestID(ctx context.Context) context.Context {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok && requestID != "" {
		return ctx
	}
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, GenerateRequestID())
}
