package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/pkg/ctxutil"
)

// visitRecorder appends one visit to the audit log.
type visitRecorder interface {
	Record(ctx context.Context, path string, userID *uuid.UUID) error
}

// skipPrefixes lists paths that generate noise, not audit value.
var skipPrefixes = []string{"/static/", "/healthz", "/readyz", "/favicon.ico"}

// VisitLog records every handled request before it is dispatched.
// Static assets and health probes are skipped. If the record cannot be
// written the request fails: an unauditable request is not served.
func VisitLog(recorder visitRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipVisit(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			var userID *uuid.UUID
			if identity := ctxutil.IdentityFromCtx(r.Context()); !identity.Anonymous() {
				id := identity.UserID
				userID = &id
			}

			if err := recorder.Record(r.Context(), r.URL.Path, userID); err != nil {
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func skipVisit(path string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
