package course

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

// Create adds a course to the catalog, authored by the caller.
// Only admins may add courses.
func (s *Service) Create(ctx context.Context, identity domain.Identity, input CreateInput) (domain.Course, error) {
	if !identity.IsAdmin() {
		return domain.Course{}, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return domain.Course{}, err
	}

	created, err := s.courses.Create(ctx, domain.Course{
		ID:         uuid.New(),
		Name:       input.Name,
		CategoryID: input.CategoryID,
		AuthorID:   identity.UserID,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return domain.Course{}, fmt.Errorf("course.Create: %w", err)
	}

	s.log.InfoContext(ctx, "course created", slog.String("course_id", created.ID.String()))
	return created, nil
}

// Get returns one course by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Course, error) {
	c, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return domain.Course{}, fmt.Errorf("course.Get: %w", err)
	}
	return c, nil
}

// List returns one page of the catalog, newest courses first.
func (s *Service) List(ctx context.Context, page int) (domain.Page[domain.Course], error) {
	page = domain.ClampPage(page)
	perPage := s.cfg.VisitsPerPage

	courses, total, err := s.courses.List(ctx, perPage, domain.PageOffset(page, perPage))
	if err != nil {
		return domain.Page[domain.Course]{}, fmt.Errorf("course.List: %w", err)
	}

	return domain.NewPage(courses, page, perPage, total), nil
}

// Categories returns the available course categories.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.courses.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("course.Categories: %w", err)
	}
	return categories, nil
}
