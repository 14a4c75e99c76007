package logger

import (
	"context"

	"storefront-be/internal/utils"

	"go.uber.org/zap"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v := ctx.Value(requestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns a logger carrying the request id and the authenticated
// user, when the context has them. Call sites never attach user_id themselves.
func FromCtx(ctx context.Context) *zap.Logger {
	log := L()

	if reqID := RequestIDFrom(ctx); reqID != "" {
		log = log.With(zap.String("request_id", reqID))
	}
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		log = log.With(zap.Uint("user_id", userID))
	}

	return log
}
