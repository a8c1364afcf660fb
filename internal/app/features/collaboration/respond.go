package collaboration

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rvetrivignesh/teamify/internal/app/store/requests"
	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type respondRequest struct {
	Status string `json:"status"`
}

// HandleRespond accepts or rejects a pending request. Only the receiver
// may respond, and a request is responded to exactly once; the losing
// side of a race gets "Request already processed".
// PUT /api/collaboration/{id}
//
// On accept the joining user (the sender of a join_request, the
// receiver of an invitation) is added to the project's collaborators.
// The sender is always told the outcome via a response notification.
func (h *Handler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusNotFound, "Request not found")
		return
	}

	var req respondRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "respond: decode body failed", err, "Invalid request body")
		return
	}
	if req.Status != models.RequestAccepted && req.Status != models.RequestRejected {
		httpjson.Message(w, http.StatusBadRequest, "Invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	request, err := h.Requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "Request not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "respond: load request failed", err, "Failed to respond to request")
		return
	}

	if request.ReceiverID != user.ObjectID() {
		h.ErrLog.LogUnauthorized(w, r, "respond: caller is not the receiver", "Not authorized")
		return
	}
	if request.Status != models.RequestPending {
		httpjson.Message(w, http.StatusBadRequest, "Request already processed")
		return
	}

	// The pending guard lives in the filter, so of two racing responders
	// exactly one reaches the side effects below.
	if err := h.Requests.MarkResponded(ctx, request.ID, req.Status); err != nil {
		if errors.Is(err, requeststore.ErrAlreadyProcessed) {
			httpjson.Message(w, http.StatusBadRequest, "Request already processed")
			return
		}
		h.ErrLog.LogServerError(w, r, "respond: mark responded failed", err, "Failed to respond to request")
		return
	}
	request.Status = req.Status

	projectName := h.projectName(ctx, request.ProjectID)

	if req.Status == models.RequestAccepted {
		if err := h.Projects.AddCollaborator(ctx, request.ProjectID, request.JoiningUser()); err != nil {
			h.ErrLog.LogServerError(w, r, "respond: add collaborator failed", err, "Failed to respond to request")
			return
		}
	}

	h.Notify.Send(ctx, models.Notification{
		RecipientID: request.SenderID,
		Message:     responseMessage(request, user.Username, projectName),
		Type:        models.NotifyResponse,
		Target:      models.RequestTarget(request.ID),
	})

	h.Log.Info("request responded",
		zap.String("request_id", request.ID.Hex()),
		zap.String("status", req.Status))

	view, err := h.renderOne(ctx, *request)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "respond: render failed", err, "Failed to load request")
		return
	}
	httpjson.Write(w, http.StatusOK, view)
}

// responseMessage words the outcome for the sender. For a join request
// the sender asked to join; for an invitation the sender is the owner
// and the responder is the invited user.
func responseMessage(req *models.CollaborationRequest, responder, projectName string) string {
	if req.Type == models.RequestInvite {
		if req.Status == models.RequestAccepted {
			return fmt.Sprintf("%s accepted your invitation to join %q!", responder, projectName)
		}
		return fmt.Sprintf("%s declined your invitation to join %q.", responder, projectName)
	}
	if req.Status == models.RequestAccepted {
		return fmt.Sprintf("Your request to join %q has been accepted!", projectName)
	}
	return fmt.Sprintf("Your request to join %q has been rejected.", projectName)
}

// projectName best-effort resolves a project's name; requests can
// outlive their project.
func (h *Handler) projectName(ctx context.Context, id primitive.ObjectID) string {
	names, err := h.Projects.NamesByIDs(ctx, []primitive.ObjectID{id})
	if err != nil {
		return ""
	}
	return names[id]
}
