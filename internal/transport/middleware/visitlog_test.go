package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
	"github.com/avolkovx/coursehub/pkg/ctxutil"
)

type visitRecorderMock struct {
	RecordFunc func(ctx context.Context, path string, userID *uuid.UUID) error

	mu    sync.Mutex
	calls []struct {
		Path   string
		UserID *uuid.UUID
	}
}

func (m *visitRecorderMock) Record(ctx context.Context, path string, userID *uuid.UUID) error {
	m.mu.Lock()
	m.calls = append(m.calls, struct {
		Path   string
		UserID *uuid.UUID
	}{Path: path, UserID: userID})
	m.mu.Unlock()
	if m.RecordFunc == nil {
		return nil
	}
	return m.RecordFunc(ctx, path, userID)
}

func (m *visitRecorderMock) RecordCalls() []struct {
	Path   string
	UserID *uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestVisitLog(t *testing.T) {
	t.Parallel()

	t.Run("records before dispatch", func(t *testing.T) {
		t.Parallel()

		recorder := &visitRecorderMock{}
		var handlerRan bool
		handler := VisitLog(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(recorder.RecordCalls()) == 0 {
				t.Error("visit must be recorded before the handler runs")
			}
			handlerRan = true
		}))

		me := domain.Identity{UserID: uuid.New(), Role: domain.RoleUser}
		r := httptest.NewRequest(http.MethodGet, "/courses?page=2", nil)
		r = r.WithContext(ctxutil.WithIdentity(r.Context(), me))
		handler.ServeHTTP(httptest.NewRecorder(), r)

		if !handlerRan {
			t.Fatal("handler did not run")
		}
		calls := recorder.RecordCalls()
		if len(calls) != 1 {
			t.Fatalf("Record called %d times, want 1", len(calls))
		}
		if calls[0].Path != "/courses" {
			t.Errorf("recorded path = %q, want /courses without query", calls[0].Path)
		}
		if calls[0].UserID == nil || *calls[0].UserID != me.UserID {
			t.Errorf("recorded user = %v, want %s", calls[0].UserID, me.UserID)
		}
	})

	t.Run("anonymous visit has nil user", func(t *testing.T) {
		t.Parallel()

		recorder := &visitRecorderMock{}
		handler := VisitLog(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		calls := recorder.RecordCalls()
		if len(calls) != 1 || calls[0].UserID != nil {
			t.Errorf("calls = %+v, want one anonymous record", calls)
		}
	})

	t.Run("static and health paths skipped", func(t *testing.T) {
		t.Parallel()

		recorder := &visitRecorderMock{}
		handler := VisitLog(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		for _, path := range []string{"/static/app.css", "/healthz", "/readyz", "/favicon.ico"} {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		}

		if calls := recorder.RecordCalls(); len(calls) != 0 {
			t.Errorf("calls = %+v, want none", calls)
		}
	})

	t.Run("record failure refuses the request", func(t *testing.T) {
		t.Parallel()

		recorder := &visitRecorderMock{
			RecordFunc: func(_ context.Context, _ string, _ *uuid.UUID) error {
				return errors.New("db down")
			},
		}
		var handlerRan bool
		handler := VisitLog(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerRan = true
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

		if handlerRan {
			t.Error("handler must not run when the visit cannot be recorded")
		}
		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
	})
}
