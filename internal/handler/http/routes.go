package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every route gets a trace id and an access log
// line; the profile and next-of-kin groups also require an access token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.home)
	router.Get("/home", h.home)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
		r.Post("/logout", h.logout)
		r.Post("/request-password-reset", h.requestPasswordReset)
		r.Post("/reset-password/{token}", h.resetPassword)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/profile", func(r chi.Router) {
			r.Get("/me", h.getProfile)
			r.Post("/create", h.createProfile)
			r.Patch("/update", h.updateProfile)
			r.Post("/upload/{image_type}", h.uploadImage)
			r.Get("/upload/{task_id}/status", h.uploadStatus)
		})

		r.Route("/next-of-kin", func(r chi.Router) {
			r.Post("/create", h.createNextOfKin)
			r.Get("/all", h.listNextOfKin)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
