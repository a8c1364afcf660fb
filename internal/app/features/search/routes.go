// internal/app/features/search/routes.go
package search

import "github.com/go-chi/chi/v5"

// Routes returns the search subrouter; mounted under /api/search behind
// the auth middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleSearch)
	return r
}
