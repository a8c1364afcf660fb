package projects

import (
	"context"
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
)

// HandleGet returns a single project with owner, collaborators, and
// task assignees resolved.
// GET /api/projects/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	project, ok := h.loadProject(ctx, w, r)
	if !ok {
		return
	}

	h.respondWithProject(ctx, w, r, *project, http.StatusOK)
}
