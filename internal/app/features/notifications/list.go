package notifications

import (
	"context"
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
)

// HandleList returns the caller's notifications, newest first.
// GET /api/notifications
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Notifications.ListByRecipient(ctx, user.ObjectID())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list notifications failed", err, "Failed to load notifications")
		return
	}

	httpjson.Write(w, http.StatusOK, list)
}
