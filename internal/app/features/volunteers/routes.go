// internal/app/features/volunteers/routes.go
package volunteers

import "github.com/go-chi/chi/v5"

// MountRoutes registers the volunteer intake endpoints.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/api/volunteers", h.Submit)
	r.Get("/api/volunteers", h.ListRecent)
}
