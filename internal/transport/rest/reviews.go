package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
	"github.com/avolkovx/coursehub/internal/service/review"
	"github.com/avolkovx/coursehub/pkg/ctxutil"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	Submit(ctx context.Context, identity domain.Identity, input review.SubmitInput) (domain.Review, error)
	List(ctx context.Context, courseID uuid.UUID, sort domain.ReviewSort, page int) (domain.Page[domain.Review], error)
	MyReview(ctx context.Context, identity domain.Identity, courseID uuid.UUID) (domain.Review, error)
}

// ReviewHandler serves course review endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "reviews")}
}

type reviewResponse struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func toReviewResponse(rv domain.Review) reviewResponse {
	return reviewResponse{
		ID:        rv.ID.String(),
		CourseID:  rv.CourseID.String(),
		UserID:    rv.UserID.String(),
		Rating:    rv.Rating,
		Text:      rv.Text,
		CreatedAt: rv.CreatedAt,
	}
}

// List handles GET /courses/{id}/reviews. The sort parameter accepts
// newest, positive and negative; anything else means newest.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sort := domain.ParseReviewSort(r.URL.Query().Get("sort"))
	page, err := h.svc.List(r.Context(), courseID, sort, pageParam(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page, toReviewResponse))
}

type submitReviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// Submit handles POST /courses/{id}/reviews.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity := ctxutil.IdentityFromCtx(r.Context())
	created, err := h.svc.Submit(r.Context(), identity, review.SubmitInput{
		CourseID: courseID,
		Rating:   req.Rating,
		Text:     req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(created))
}

// MyReview handles GET /courses/{id}/reviews/my. 404 means the caller
// has not reviewed the course yet.
func (h *ReviewHandler) MyReview(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	identity := ctxutil.IdentityFromCtx(r.Context())
	rv, err := h.svc.MyReview(r.Context(), identity, courseID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse(rv))
}
