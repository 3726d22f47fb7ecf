package ctxutil

import (
	"context"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	roleKey      ctxKey = "actor_role"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the acting reviewer's id and role in the context.
func WithActor(ctx context.Context, id, role string) context.Context {
	ctx = context.WithValue(ctx, actorKey, id)
	return context.WithValue(ctx, roleKey, role)
}

// ActorFromCtx extracts the actor id from the context.
// Returns "" and false if the value is missing or empty.
func ActorFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// RoleFromCtx extracts the actor role from the context, "" if absent.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
