package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// SetRequestID stores id on ctx, generating a new UUID when id is empty.
func SetRequestID(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, RequestIDKey, id), id
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok && id != ""
}
