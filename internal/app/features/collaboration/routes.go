// internal/app/features/collaboration/routes.go
package collaboration

import "github.com/go-chi/chi/v5"

// Routes returns the collaboration subrouter; mounted under
// /api/collaboration behind the auth middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/invite", h.HandleInvite)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleRespond)

	return r
}
