package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bachelormess/mess-manager/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes for authenticated members
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)

		r.Get("/api/meals", h.listMeals)
		r.Post("/api/meals", h.submitMeal)
		r.Get("/api/bazar", h.listBazar)
		r.Post("/api/bazar", h.submitBazar)
		r.Get("/api/dashboard", h.dashboard)

		// management routes, admin and above
		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdmin))

			r.Patch("/api/meals/{mealID}/status", h.setMealStatus)
			r.Patch("/api/bazar/{entryID}/status", h.setBazarStatus)
			r.Get("/api/users", h.listUsers)
			r.Patch("/api/users/{userID}/role", h.setUserRole)
			r.Patch("/api/users/{userID}/status", h.setUserStatus)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
