package domain

import "context"

// SystemActor is recorded for actions not triggered by a logged-in admin
const SystemActor = "system"

type actorKey struct{}

// WithActor returns a context naming the admin performing the request
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorKey{}, username)
}

// ActorFromContext returns the acting admin, or SystemActor
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
		return v
	}
	return SystemActor
}
