package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
	"github.com/avolkovx/coursehub/pkg/ctxutil"
)

const sessionCookie = "session"

type tokenValidatorMock struct {
	ValidateFunc func(token string) (domain.Identity, error)
}

func (m *tokenValidatorMock) Validate(token string) (domain.Identity, error) {
	return m.ValidateFunc(token)
}

// identityEcho captures the identity the handler observed.
func identityEcho(got *domain.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = ctxutil.IdentityFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	t.Parallel()

	me := domain.Identity{UserID: uuid.New(), Role: domain.RoleUser}
	validator := &tokenValidatorMock{
		ValidateFunc: func(token string) (domain.Identity, error) {
			if token == "good" {
				return me, nil
			}
			return domain.Identity{}, fmt.Errorf("bad token")
		},
	}

	t.Run("valid session cookie", func(t *testing.T) {
		t.Parallel()

		var got domain.Identity
		handler := Auth(validator, sessionCookie)(identityEcho(&got))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: sessionCookie, Value: "good"})
		handler.ServeHTTP(httptest.NewRecorder(), r)

		if got != me {
			t.Errorf("identity = %+v, want %+v", got, me)
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		t.Parallel()

		var got domain.Identity
		handler := Auth(validator, sessionCookie)(identityEcho(&got))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer good")
		handler.ServeHTTP(httptest.NewRecorder(), r)

		if got != me {
			t.Errorf("identity = %+v, want %+v", got, me)
		}
	})

	t.Run("no token is anonymous", func(t *testing.T) {
		t.Parallel()

		var got domain.Identity
		handler := Auth(validator, sessionCookie)(identityEcho(&got))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, anonymous requests must pass through", w.Code)
		}
		if !got.Anonymous() {
			t.Errorf("identity = %+v, want anonymous", got)
		}
	})

	t.Run("invalid token is anonymous, not an error", func(t *testing.T) {
		t.Parallel()

		var got domain.Identity
		handler := Auth(validator, sessionCookie)(identityEcho(&got))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: sessionCookie, Value: "expired"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		if !got.Anonymous() {
			t.Errorf("identity = %+v, want anonymous", got)
		}
	})
}
