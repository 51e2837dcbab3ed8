// internal/app/features/programs/routes.go
package programs

import "github.com/go-chi/chi/v5"

// MountRoutes registers one category's full endpoint surface under its
// API prefix: CRUD, children, section merges, analytics and global
// stats, plus the category's special operations.
func MountRoutes(r chi.Router, h *Handler) {
	cat := h.cat()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/stats/global", h.GlobalStats)

	r.Route("/{key}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/analytics", h.Analytics)

		for i := range cat.Children {
			child := &cat.Children[i]
			if !child.NoAppend {
				r.Post("/"+child.Kind, h.appendChild(child))
			}
			if child.Updatable {
				r.Put("/"+child.Kind+"/{childID}", h.updateChild(child))
			}
		}
		for segment, op := range cat.MergeOps {
			r.Post("/"+segment, h.mergeSection(op))
		}

		switch cat.Name {
		case "hubs":
			r.Post("/enroll", h.specialOp("enroll hub student", "Program not found or not active", "Student enrolled successfully", h.store.EnrollStudent))
			r.Post("/progress", h.specialOp("record hub progress", "", "Progress updated successfully", h.store.RecordProgress))
		case "devices":
			r.Post("/usage", h.specialOp("record device usage", "", "Usage updated successfully", h.store.RecordUsage))
		case "training":
			r.Post("/enroll", h.specialOp("enroll teacher", "", "Teacher enrolled successfully", h.store.EnrollTeacher))
		}
	})
}
