package visitlog

import (
	"context"
	"fmt"

	"github.com/avolkovx/coursehub/internal/domain"
)

// PagesReport returns one page of the by-page report: paths with their
// visit counts, most visited first.
func (s *Service) PagesReport(ctx context.Context, page int) (domain.Page[domain.PathVisits], error) {
	page = domain.ClampPage(page)
	perPage := s.cfg.VisitsPerPage

	rows, err := s.visits.CountByPath(ctx, perPage, domain.PageOffset(page, perPage))
	if err != nil {
		return domain.Page[domain.PathVisits]{}, fmt.Errorf("visitlog.PagesReport: %w", err)
	}

	total, err := s.visits.CountDistinctPaths(ctx)
	if err != nil {
		return domain.Page[domain.PathVisits]{}, fmt.Errorf("visitlog.PagesReport count: %w", err)
	}

	return domain.NewPage(rows, page, perPage, total), nil
}

// PagesReportRows returns the complete by-page report without windowing,
// for CSV export. The ordering matches PagesReport.
func (s *Service) PagesReportRows(ctx context.Context) ([]domain.PathVisits, error) {
	rows, err := s.visits.CountByPath(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("visitlog.PagesReportRows: %w", err)
	}
	return rows, nil
}

// UsersReport returns one page of the by-user report: every user with
// their visit count, most active first. Users who never visited still
// appear with zero.
func (s *Service) UsersReport(ctx context.Context, page int) (domain.Page[domain.UserVisits], error) {
	page = domain.ClampPage(page)
	perPage := s.cfg.VisitsPerPage

	rows, err := s.visits.CountByUser(ctx, perPage, domain.PageOffset(page, perPage))
	if err != nil {
		return domain.Page[domain.UserVisits]{}, fmt.Errorf("visitlog.UsersReport: %w", err)
	}

	total, err := s.visits.CountUsers(ctx)
	if err != nil {
		return domain.Page[domain.UserVisits]{}, fmt.Errorf("visitlog.UsersReport count: %w", err)
	}

	return domain.NewPage(rows, page, perPage, total), nil
}

// UsersReportRows returns the complete by-user report without windowing,
// for CSV export. The ordering matches UsersReport.
func (s *Service) UsersReportRows(ctx context.Context) ([]domain.UserVisits, error) {
	rows, err := s.visits.CountByUser(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("visitlog.UsersReportRows: %w", err)
	}
	return rows, nil
}
