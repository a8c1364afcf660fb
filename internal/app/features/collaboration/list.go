package collaboration

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleList returns the caller's sent and received requests, each
// enriched with usernames and the project name.
// GET /api/collaboration
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	callerID := user.ObjectID()

	sent, err := h.Requests.ListBySender(ctx, callerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list requests: sent query failed", err, "Failed to load requests")
		return
	}
	received, err := h.Requests.ListByReceiver(ctx, callerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list requests: received query failed", err, "Failed to load requests")
		return
	}

	sentViews, err := h.render(ctx, sent)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list requests: render sent failed", err, "Failed to load requests")
		return
	}
	receivedViews, err := h.render(ctx, received)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list requests: render received failed", err, "Failed to load requests")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{
		"sent":     sentViews,
		"received": receivedViews,
	})
}

// HandleGet returns one request. Only the sender or receiver may see
// it.
// GET /api/collaboration/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusNotFound, "Request not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	request, err := h.Requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "Request not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "get request failed", err, "Failed to load request")
		return
	}

	callerID := user.ObjectID()
	if request.SenderID != callerID && request.ReceiverID != callerID {
		h.ErrLog.LogUnauthorized(w, r, "get request: caller is not a party", "Not authorized")
		return
	}

	view, err := h.renderOne(ctx, *request)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get request: render failed", err, "Failed to load request")
		return
	}
	httpjson.Write(w, http.StatusOK, view)
}
