package collaboration

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/sanitize"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type inviteRequest struct {
	UserID    string `json:"userId"`
	ProjectID string `json:"projectId"`
	Message   string `json:"message"`
}

// HandleInvite invites a user onto a project the caller owns. The
// invited user receives the request and a notification pointing at it.
// POST /api/collaboration/invite
func (h *Handler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req inviteRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "invite: decode body failed", err, "Invalid request body")
		return
	}

	targetID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	projectID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	project, err := h.Projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "Project not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "invite: load project failed", err, "Failed to send invitation")
		return
	}

	callerID := user.ObjectID()
	if !project.IsOwner(callerID) {
		h.ErrLog.LogForbidden(w, r, "invite: caller is not the owner", "Not authorized to invite users to this project")
		return
	}
	if targetID == project.OwnerID {
		httpjson.Message(w, http.StatusBadRequest, "You cannot invite the project owner")
		return
	}
	if project.IsCollaborator(targetID) {
		httpjson.Message(w, http.StatusBadRequest, "User is already a collaborator on this project")
		return
	}

	if _, err := h.Users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "User not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "invite: load user failed", err, "Failed to send invitation")
		return
	}

	pending, err := h.Requests.HasPendingInvite(ctx, callerID, targetID, project.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "invite: pending check failed", err, "Failed to send invitation")
		return
	}
	if pending {
		httpjson.Message(w, http.StatusBadRequest, "An invitation is already pending for this user")
		return
	}

	request, err := h.Requests.Create(ctx, models.CollaborationRequest{
		SenderID:   callerID,
		ReceiverID: targetID,
		ProjectID:  project.ID,
		Type:       models.RequestInvite,
		Message:    sanitize.Text(req.Message),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "invite: create request failed", err, "Failed to send invitation")
		return
	}

	h.Notify.Send(ctx, models.Notification{
		RecipientID: targetID,
		Message:     fmt.Sprintf("%s invited you to join %q", user.Username, project.Name),
		Type:        models.NotifyRequest,
		Target:      models.RequestTarget(request.ID),
	})

	h.Log.Info("invitation created",
		zap.String("request_id", request.ID.Hex()),
		zap.String("project_id", project.ID.Hex()),
		zap.String("invited_user_id", targetID.Hex()))

	httpjson.Message(w, http.StatusCreated, "Invitation sent successfully")
}
