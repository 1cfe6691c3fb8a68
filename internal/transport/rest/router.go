package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avolkovx/coursehub/internal/domain"
	"github.com/avolkovx/coursehub/internal/transport/middleware"
)

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Users   *UserHandler
	Courses *CourseHandler
	Reviews *ReviewHandler
	Reports *ReportsHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP route tree. Identity resolution and visit
// recording run for every route; role guards wrap the subtrees that
// need them. Health probes sit outside the visit log on purpose.
func NewRouter(h Handlers, base []middleware.Middleware, visits middleware.Middleware) http.Handler {
	r := chi.NewRouter()

	for _, mw := range base {
		r.Use(mw)
	}

	// Probes bypass the audit trail.
	r.Get("/healthz", h.Health.Live)
	r.Get("/readyz", h.Health.Ready)

	r.Group(func(r chi.Router) {
		r.Use(visits)

		// Public.
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.Get("/courses", h.Courses.List)
		r.Get("/courses/{id}", h.Courses.Get)
		r.Get("/courses/{id}/reviews", h.Reviews.List)
		r.Get("/categories", h.Courses.Categories)

		// Any authenticated user.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(domain.RoleAdmin, domain.RoleUser))

			r.Get("/profile", h.Users.Me)
			r.Post("/profile/password", h.Auth.ChangePassword)
			r.Put("/users/{id}", h.Users.Update)
			r.Get("/visits", h.Reports.History)
			r.Post("/courses/{id}/reviews", h.Reviews.Submit)
			r.Get("/courses/{id}/reviews/my", h.Reviews.MyReview)
		})

		// Admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(domain.RoleAdmin))

			r.Get("/users", h.Users.List)
			r.Post("/users", h.Users.Create)
			r.Get("/users/{id}", h.Users.Get)
			r.Delete("/users/{id}", h.Users.Delete)
			r.Get("/roles", h.Users.Roles)
			r.Post("/courses", h.Courses.Create)
			r.Get("/reports/pages", h.Reports.PagesReport)
			r.Get("/reports/pages/export", h.Reports.PagesReportCSV)
			r.Get("/reports/users", h.Reports.UsersReport)
			r.Get("/reports/users/export", h.Reports.UsersReportCSV)
		})
	})

	return r
}
