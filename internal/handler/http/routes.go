package http

import (
	"github.com/MKhiriev/project-elevate/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/assessments", h.listAssessments)

		r.With(h.requireRole(models.RoleAdmin)).Post("/api/users", h.createUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
