package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// bearer-protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/me", h.me)
		r.Get("/api/main", h.mainPage)
		r.Get("/api/products", h.products)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
