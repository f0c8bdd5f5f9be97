package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRequestDB)
	router.Use(h.withIdentity)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/auth/register", h.registerForm)
		r.Post("/auth/register", h.register)
		r.Get("/auth/login", h.loginForm)
		r.Post("/auth/login", h.login)
		r.Get("/auth/logout", h.logout)
	})

	// routes that require a logged-in user
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/create", h.createForm)
		r.Post("/create", h.createPost)
		r.Get("/{id}/update", h.updateForm)
		r.Post("/{id}/update", h.updatePost)
		r.Post("/{id}/delete", h.deletePost)
	})

	return router
}
