// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

// Routes returns the profile subrouter; mounted under /api/profile
// behind the auth middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleUpsert)
	r.Get("/me", h.HandleMe)
	r.Get("/recommendations", h.HandleRecommendations)
	r.Get("/u/{username}", h.HandleByUsername)

	return r
}
