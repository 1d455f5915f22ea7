package routers

import (
	"gameshelf/internal/handlers"
	"gameshelf/internal/middleware"
	"gameshelf/internal/sessions"

	"github.com/go-chi/chi/v5"
)

func ProfileRoutes(r *chi.Mux, store sessions.Store, profileHandler *handlers.ProfileHandler) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(store))
		r.Get("/profile", profileHandler.GetProfileHandler)
		r.Post("/profile/update", profileHandler.UpdateProfileHandler) // multipart, optional photo
	})
}
