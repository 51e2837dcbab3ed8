// internal/app/features/auth/routes.go
package auth

import "github.com/go-chi/chi/v5"

// MountRoutes registers the registration and login endpoints.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
}
