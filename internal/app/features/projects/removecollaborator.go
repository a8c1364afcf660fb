package projects

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleRemoveCollaborator removes a user from the project team. Owner
// only. The removed user is told via an info notification.
// DELETE /api/projects/{id}/collaborators/{userId}
func (h *Handler) HandleRemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	targetID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userId"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	project, ok := h.loadProject(ctx, w, r)
	if !ok {
		return
	}

	if !project.IsOwner(user.ObjectID()) {
		h.ErrLog.LogUnauthorized(w, r, "remove collaborator: caller is not the owner", "Not authorized")
		return
	}
	if !project.IsCollaborator(targetID) {
		httpjson.Message(w, http.StatusBadRequest, "User is not a collaborator on this project")
		return
	}

	if err := h.Projects.RemoveCollaborator(ctx, project.ID, targetID); err != nil {
		h.ErrLog.LogServerError(w, r, "remove collaborator failed", err, "Failed to remove collaborator")
		return
	}

	h.Notify.Send(ctx, models.Notification{
		RecipientID: targetID,
		Message:     fmt.Sprintf("You were removed from %q", project.Name),
		Type:        models.NotifyInfo,
		Target:      models.ProjectTarget(project.ID),
	})

	h.Log.Info("collaborator removed",
		zap.String("project_id", project.ID.Hex()),
		zap.String("user_id", targetID.Hex()))

	httpjson.Message(w, http.StatusOK, "Collaborator removed")
}
