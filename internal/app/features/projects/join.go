package projects

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/sanitize"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.uber.org/zap"
)

type joinRequest struct {
	Message string `json:"message"`
}

// HandleJoin files a join request on a project. The project owner
// receives the request and a notification pointing at it.
// POST /api/projects/{id}/join
func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req joinRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "join project: decode body failed", err, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	project, ok := h.loadProject(ctx, w, r)
	if !ok {
		return
	}

	callerID := user.ObjectID()
	if project.IsOwner(callerID) {
		httpjson.Message(w, http.StatusBadRequest, "You are the owner of this project")
		return
	}
	if project.IsCollaborator(callerID) {
		httpjson.Message(w, http.StatusBadRequest, "You are already a collaborator on this project")
		return
	}

	pending, err := h.Requests.HasPendingJoin(ctx, callerID, project.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "join project: pending check failed", err, "Failed to send request")
		return
	}
	if pending {
		httpjson.Message(w, http.StatusBadRequest, "You already have a pending request for this project")
		return
	}

	request, err := h.Requests.Create(ctx, models.CollaborationRequest{
		SenderID:   callerID,
		ReceiverID: project.OwnerID,
		ProjectID:  project.ID,
		Type:       models.RequestJoin,
		Message:    sanitize.Text(req.Message),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "join project: create request failed", err, "Failed to send request")
		return
	}

	h.Notify.Send(ctx, models.Notification{
		RecipientID: project.OwnerID,
		Message:     fmt.Sprintf("%s wants to join %q", user.Username, project.Name),
		Type:        models.NotifyRequest,
		Target:      models.RequestTarget(request.ID),
	})

	h.Log.Info("join request created",
		zap.String("request_id", request.ID.Hex()),
		zap.String("project_id", project.ID.Hex()),
		zap.String("sender_id", user.ID))

	httpjson.Message(w, http.StatusCreated, "Request sent successfully")
}
