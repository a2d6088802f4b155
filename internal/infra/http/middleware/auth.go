package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/edhorizon/pipeline-service/internal/entity"
)

type contextKey string

const actorKey contextKey = "actor"

// ActorResolver turns a session token into the acting profile.
type ActorResolver interface {
	FindActorByToken(ctx context.Context, token string) (*entity.Actor, error)
}

// Authenticate resolves the bearer token into an Actor on the request
// context. Resolution failures do not reject the request here; read paths
// degrade to empty results and write handlers enforce authentication
// themselves, so an anonymous request simply carries a nil actor.
func Authenticate(resolver ActorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" {
				if actor, err := resolver.FindActorByToken(r.Context(), token); err == nil {
					r = r.WithContext(WithActor(r.Context(), actor))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithActor(ctx context.Context, actor *entity.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the authenticated actor, or nil.
func ActorFromContext(ctx context.Context) *entity.Actor {
	actor, _ := ctx.Value(actorKey).(*entity.Actor)
	return actor
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
