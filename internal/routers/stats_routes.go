package routers

import (
	"gameshelf/internal/handlers"
	"gameshelf/internal/middleware"
	"gameshelf/internal/sessions"

	"github.com/go-chi/chi/v5"
)

func StatsRoutes(r *chi.Mux, store sessions.Store, statsHandler *handlers.StatsHandler) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(store))
		r.Get("/stats", statsHandler.GetStatsHandler)
	})
}
