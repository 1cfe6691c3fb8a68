package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/avolkovx/coursehub/internal/domain"
	"github.com/avolkovx/coursehub/internal/export"
	"github.com/avolkovx/coursehub/internal/transport/middleware"
	"github.com/avolkovx/coursehub/pkg/ctxutil"
)

// visitService defines the minimal interface needed by ReportsHandler.
type visitService interface {
	History(ctx context.Context, identity domain.Identity, page int) (domain.Page[domain.VisitRecord], error)
	PagesReport(ctx context.Context, page int) (domain.Page[domain.PathVisits], error)
	PagesReportRows(ctx context.Context) ([]domain.PathVisits, error)
	UsersReport(ctx context.Context, page int) (domain.Page[domain.UserVisits], error)
	UsersReportRows(ctx context.Context) ([]domain.UserVisits, error)
}

// ReportsHandler serves the visit history, aggregation reports and
// their CSV downloads.
type ReportsHandler struct {
	svc visitService
	log *slog.Logger
}

// NewReportsHandler creates a ReportsHandler.
func NewReportsHandler(svc visitService, logger *slog.Logger) *ReportsHandler {
	return &ReportsHandler{svc: svc, log: logger.With("handler", "reports")}
}

type visitResponse struct {
	ID        int64     `json:"id"`
	Path      string    `json:"path"`
	UserID    *string   `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toVisitResponse(rec domain.VisitRecord) visitResponse {
	resp := visitResponse{
		ID:        rec.ID,
		Path:      rec.Path,
		CreatedAt: rec.CreatedAt,
	}
	if rec.UserID != nil {
		id := rec.UserID.String()
		resp.UserID = &id
	}
	return resp
}

// History handles GET /visits: the raw audit log, scoped by role.
func (h *ReportsHandler) History(w http.ResponseWriter, r *http.Request) {
	identity := ctxutil.IdentityFromCtx(r.Context())
	page, err := h.svc.History(r.Context(), identity, pageParam(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toVisitResponse))
}

type pathVisitsResponse struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// PagesReport handles GET /reports/pages.
func (h *ReportsHandler) PagesReport(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.PagesReport(r.Context(), pageParam(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, func(pv domain.PathVisits) pathVisitsResponse {
		return pathVisitsResponse{Path: pv.Path, Visits: pv.Visits}
	}))
}

type userVisitsResponse struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	Visits   int64  `json:"visits"`
}

// UsersReport handles GET /reports/users.
func (h *ReportsHandler) UsersReport(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.UsersReport(r.Context(), pageParam(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, func(uv domain.UserVisits) userVisitsResponse {
		return userVisitsResponse{UserID: uv.UserID.String(), FullName: uv.FullName, Visits: uv.Visits}
	}))
}

// PagesReportCSV handles GET /reports/pages/export.
func (h *ReportsHandler) PagesReportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.PagesReportRows(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	data, err := export.PathVisitsCSV(rows)
	h.serveCSV(w, r, "pages_report.csv", data, err)
}

// UsersReportCSV handles GET /reports/users/export.
func (h *ReportsHandler) UsersReportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.UsersReportRows(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	data, err := export.UserVisitsCSV(rows)
	h.serveCSV(w, r, "users_report.csv", data, err)
}

// serveCSV sends a CSV download. An empty report yields no file: the
// caller is sent back to the index with a notice instead.
func (h *ReportsHandler) serveCSV(w http.ResponseWriter, r *http.Request, filename string, data []byte, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrNothingToExport) {
			middleware.SetNotice(w, "Нет данных для экспорта.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}
