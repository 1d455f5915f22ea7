package routers

import (
	"gameshelf/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler) {
	r.Post("/signup", authHandler.SignupHandler) // User registration
	r.Post("/login", authHandler.LoginHandler)   // User login
	r.Post("/logout", authHandler.LogoutHandler) // Destroy session (idempotent)
}
