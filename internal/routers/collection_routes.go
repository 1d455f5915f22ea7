package routers

import (
	"gameshelf/internal/handlers"
	"gameshelf/internal/middleware"
	"gameshelf/internal/sessions"

	"github.com/go-chi/chi/v5"
)

func CollectionRoutes(r *chi.Mux, store sessions.Store, collectionHandler *handlers.CollectionHandler) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(store))
		r.Post("/collection", collectionHandler.AddGameHandler)
		r.Get("/collection", collectionHandler.ListGamesHandler)
		r.Delete("/collection/{id}", collectionHandler.RemoveGameHandler)
	})
}
