package visitlog

import (
	"context"
	"fmt"

	"github.com/avolkovx/coursehub/internal/domain"
)

// History returns a page of raw visit records, newest first.
// Admins see the whole log; regular users see only their own visits.
// Anonymous callers are rejected — the route guard should have stopped
// them already, this is the second line.
func (s *Service) History(ctx context.Context, identity domain.Identity, page int) (domain.Page[domain.VisitRecord], error) {
	if identity.Anonymous() {
		return domain.Page[domain.VisitRecord]{}, domain.ErrUnauthorized
	}

	page = domain.ClampPage(page)
	perPage := s.cfg.VisitsPerPage
	offset := domain.PageOffset(page, perPage)

	var (
		records []domain.VisitRecord
		total   int64
		err     error
	)
	if identity.IsAdmin() {
		records, total, err = s.visits.ListAll(ctx, perPage, offset)
	} else {
		records, total, err = s.visits.ListByUser(ctx, identity.UserID, perPage, offset)
	}
	if err != nil {
		return domain.Page[domain.VisitRecord]{}, fmt.Errorf("visitlog.History: %w", err)
	}

	return domain.NewPage(records, page, perPage, total), nil
}
