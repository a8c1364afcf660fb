// internal/app/features/notifications/routes.go
package notifications

import "github.com/go-chi/chi/v5"

// Routes returns the notifications subrouter; mounted under
// /api/notifications behind the auth middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Put("/{id}/read", h.HandleMarkRead)

	return r
}
