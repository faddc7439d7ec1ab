package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entities.Principal, error)
}

type RouteAuthorizer interface {
	IsAuthorized(role entities.Role, route string) bool
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the authenticated caller, if any.
func PrincipalFrom(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	return p, ok
}

// Authenticate resolves a bearer token into a principal. Requests without an
// Authorization header pass through anonymously; a present but invalid token
// is rejected.
func Authenticate(logger *slog.Logger, authn Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			p, err := authn.Authenticate(r.Context(), strings.TrimSpace(token))
			if errors.Is(err, entities.ErrUnauthenticated) {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if err != nil {
				logger.ErrorContext(r.Context(), "failed to authenticate", slog.Any("error", err))
				utils.WriteError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// Authorize checks the caller's role against the matched route pattern. It
// must run after routing, as an inline middleware, so the pattern is known.
func Authorize(authz RouteAuthorizer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := ""
			if rc := chi.RouteContext(r.Context()); rc != nil {
				route = rc.RoutePattern()
			}

			role := entities.RoleAnonymous
			p, authenticated := PrincipalFrom(r.Context())
			if authenticated {
				role = p.Role
			}

			if authz.IsAuthorized(role, route) {
				next.ServeHTTP(w, r)
				return
			}

			authzDenied.WithLabelValues(route, role.String()).Inc()
			if !authenticated {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			utils.WriteError(w, "forbidden", http.StatusForbidden)
		})
	}
}
