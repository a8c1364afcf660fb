package notifications

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

// HandleMarkRead marks a notification as read and returns it. Marking
// twice is a no-op that still succeeds.
// PUT /api/notifications/{id}/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusNotFound, "Notification not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	notif, err := h.Notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "Notification not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "mark read: load notification failed", err, "Failed to update notification")
		return
	}

	if notif.RecipientID != user.ObjectID() {
		h.ErrLog.LogUnauthorized(w, r, "mark read: caller is not the recipient", "Not authorized")
		return
	}

	updated, err := h.Notifications.MarkRead(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "mark read failed", err, "Failed to update notification")
		return
	}

	httpjson.Write(w, http.StatusOK, updated)
}
