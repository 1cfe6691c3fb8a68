package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avolkovx/coursehub/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows -> not found", pgx.ErrNoRows, domain.ErrNotFound},
		{"unique violation -> already exists", &pgconn.PgError{Code: "23505"}, domain.ErrAlreadyExists},
		{"fk violation -> not found", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check violation -> validation", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"context canceled passes through", context.Canceled, context.Canceled},
		{"deadline passes through", context.DeadlineExceeded, context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.in, "review", "some-id")
			if tt.want == nil {
				if got != nil {
					t.Fatalf("MapError(nil) = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(%v) = %v, want wrapped %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapError_UnknownErrorWrapped(t *testing.T) {
	t.Parallel()

	orig := errors.New("connection reset")
	got := MapError(orig, "visit_record", 42)
	if !errors.Is(got, orig) {
		t.Errorf("unknown error should stay wrapped, got %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) || errors.Is(got, domain.ErrAlreadyExists) {
		t.Errorf("unknown error must not map to a domain sentinel, got %v", got)
	}
}
