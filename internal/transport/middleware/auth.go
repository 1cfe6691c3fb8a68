package middleware

import (
	"net/http"
	"strings"

	"github.com/avolkovx/coursehub/internal/domain"
	"github.com/avolkovx/coursehub/pkg/ctxutil"
)

// tokenValidator resolves a session token to the identity it carries.
type tokenValidator interface {
	Validate(token string) (domain.Identity, error)
}

// Auth resolves the caller's identity from the session cookie or a
// bearer token and stores it in the request context. A missing,
// expired or otherwise invalid token makes the request anonymous; it
// never blocks the request, that is the role guard's job.
func Auth(validator tokenValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := validator.Validate(token)
			if err != nil {
				next.ServeHTTP(w, r) // treat as anonymous
				return
			}

			ctx := ctxutil.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken prefers the session cookie; an Authorization bearer
// header works as a fallback for non-browser clients.
func extractToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
