package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every route lives under /api; mutations of
// courses and the current-user lookup pass through the Basic auth
// middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	router.Use(withGZip)
	router.Use(middleware.StripSlashes)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/courses", h.listCourses)
			r.Get("/courses/{id}", h.getCourse)
			r.Post("/users", h.createUser)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/users", h.getCurrentUser)
			r.Post("/courses", h.createCourse)
			r.Put("/courses/{id}", h.updateCourse)
			r.Delete("/courses/{id}", h.deleteCourse)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
