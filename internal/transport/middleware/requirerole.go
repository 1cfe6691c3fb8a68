package middleware

import (
	"net/http"
	"net/url"
	"slices"

	"github.com/avolkovx/coursehub/internal/domain"
	"github.com/avolkovx/coursehub/pkg/ctxutil"
)

// noticeCookie carries a one-shot flash message for the next page load.
// The front end reads and clears it.
const noticeCookie = "notice"

// insufficientRights is the flash shown after a forbidden redirect.
const insufficientRights = "У вас недостаточно прав для доступа к данной странице."

// RequireRoles guards a route subtree. Anonymous callers are redirected
// to the login page with the original URL in the next parameter so they
// return where they started after logging in. Authenticated callers
// without one of the allowed roles are sent to the index with a notice;
// they never learn whether the page exists.
func RequireRoles(roles ...domain.RoleName) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := ctxutil.IdentityFromCtx(r.Context())

			if identity.Anonymous() {
				target := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, target, http.StatusFound)
				return
			}

			if !slices.Contains(roles, identity.Role) {
				SetNotice(w, insufficientRights)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SetNotice stores a flash message in the notice cookie.
func SetNotice(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     noticeCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: false,
	})
}
