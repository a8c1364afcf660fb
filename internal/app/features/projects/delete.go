package projects

import (
	"context"
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/policy/projectpolicy"
	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete removes a project. Owner only. Collaboration requests
// and notifications that reference the project are left in place.
// DELETE /api/projects/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	project, ok := h.loadProject(ctx, w, r)
	if !ok {
		return
	}

	if !projectpolicy.CanModifyProject(project, user.ObjectID()) {
		h.ErrLog.LogForbidden(w, r, "delete project: caller is not the owner", "Not authorized to delete this project")
		return
	}

	if _, err := h.Projects.Delete(ctx, project.ID); err != nil {
		h.ErrLog.LogServerError(w, r, "delete project failed", err, "Failed to delete project")
		return
	}

	h.Log.Info("project deleted",
		zap.String("project_id", project.ID.Hex()),
		zap.String("owner_id", user.ID))

	httpjson.Message(w, http.StatusOK, "Project removed")
}
