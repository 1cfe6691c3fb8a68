package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
	"github.com/avolkovx/coursehub/internal/service/course"
	"github.com/avolkovx/coursehub/pkg/ctxutil"
)

// courseService defines the minimal interface needed by CourseHandler.
type courseService interface {
	Create(ctx context.Context, identity domain.Identity, input course.CreateInput) (domain.Course, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Course, error)
	List(ctx context.Context, page int) (domain.Page[domain.Course], error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// CourseHandler serves the course catalog endpoints.
type CourseHandler struct {
	svc courseService
	log *slog.Logger
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(svc courseService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, log: logger.With("handler", "courses")}
}

type courseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryID  int       `json:"categoryId"`
	AuthorID    string    `json:"authorId"`
	Rating      float64   `json:"rating"`
	ReviewCount int64     `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCourseResponse(c domain.Course) courseResponse {
	return courseResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		CategoryID:  c.CategoryID,
		AuthorID:    c.AuthorID.String(),
		Rating:      c.AverageRating(),
		ReviewCount: c.RatingCount,
		CreatedAt:   c.CreatedAt,
	}
}

// List handles GET /courses.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), pageParam(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toCourseResponse))
}

// Get handles GET /courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourseResponse(c))
}

type createCourseRequest struct {
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
}

// Create handles POST /courses.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity := ctxutil.IdentityFromCtx(r.Context())
	created, err := h.svc.Create(r.Context(), identity, course.CreateInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCourseResponse(created))
}

type categoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Categories handles GET /categories.
func (h *CourseHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID, Name: c.Name})
	}
	writeJSON(w, http.StatusOK, out)
}
