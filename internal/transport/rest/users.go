package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
	"github.com/avolkovx/coursehub/internal/service/user"
	"github.com/avolkovx/coursehub/pkg/ctxutil"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Create(ctx context.Context, identity domain.Identity, input user.CreateInput) (domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context, page int) (domain.Page[domain.User], error)
	AdminEdit(ctx context.Context, identity domain.Identity, id uuid.UUID, input user.AdminEditInput) (domain.User, error)
	SelfEdit(ctx context.Context, identity domain.Identity, input user.SelfEditInput) (domain.User, error)
	Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error
	Roles(ctx context.Context) ([]domain.Role, error)
}

// UserHandler serves account management endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type userResponse struct {
	ID         string    `json:"id"`
	Login      string    `json:"login"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	MiddleName *string   `json:"middleName,omitempty"`
	FullName   string    `json:"fullName"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:         u.ID.String(),
		Login:      u.Login,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		FullName:   u.FullName(),
		Role:       string(u.Role),
		CreatedAt:  u.CreatedAt,
	}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), pageParam(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toUserResponse))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Me handles GET /profile.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := ctxutil.IdentityFromCtx(r.Context())
	if identity.Anonymous() {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.svc.Get(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type createUserRequest struct {
	Login      string  `json:"login"`
	Password   string  `json:"password"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MiddleName *string `json:"middleName"`
	Role       string  `json:"role"`
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity := ctxutil.IdentityFromCtx(r.Context())
	created, err := h.svc.Create(r.Context(), identity, user.CreateInput{
		Login:      req.Login,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Role:       domain.RoleName(req.Role),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(created))
}

type editUserRequest struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MiddleName *string `json:"middleName"`
	Role       string  `json:"role"`
}

// Update handles PUT /users/{id}. Admins edit any account including
// its role; everyone else may only edit their own profile, and the
// role field is ignored for them by construction.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req editUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity := ctxutil.IdentityFromCtx(r.Context())

	var updated domain.User
	if identity.IsAdmin() {
		updated, err = h.svc.AdminEdit(r.Context(), identity, id, user.AdminEditInput{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			MiddleName: req.MiddleName,
			Role:       domain.RoleName(req.Role),
		})
	} else if identity.UserID == id {
		updated, err = h.svc.SelfEdit(r.Context(), identity, user.SelfEditInput{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			MiddleName: req.MiddleName,
		})
	} else {
		err = domain.ErrForbidden
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	identity := ctxutil.IdentityFromCtx(r.Context())
	if err := h.svc.Delete(r.Context(), identity, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type roleResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Roles handles GET /roles.
func (h *UserHandler) Roles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.svc.Roles(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		out = append(out, roleResponse{ID: role.ID, Name: string(role.Name), Description: role.Description})
	}
	writeJSON(w, http.StatusOK, out)
}
