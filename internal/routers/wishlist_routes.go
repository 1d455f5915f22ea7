package routers

import (
	"gameshelf/internal/handlers"
	"gameshelf/internal/middleware"
	"gameshelf/internal/sessions"

	"github.com/go-chi/chi/v5"
)

func WishlistRoutes(r *chi.Mux, store sessions.Store, wishlistHandler *handlers.WishlistHandler) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(store))
		r.Post("/wishlist", wishlistHandler.AddEntryHandler)
		r.Get("/wishlist", wishlistHandler.ListEntriesHandler)
		r.Delete("/wishlist/{id}", wishlistHandler.RemoveEntryHandler)
	})
}
