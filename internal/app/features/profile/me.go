package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleMe returns the caller's own profile.
// GET /api/profile/me
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Profiles.GetByUserID(ctx, user.ObjectID())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "load own profile failed", err, "Failed to load profile")
		return
	}

	view, err := h.renderOne(ctx, *p)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "render own profile failed", err, "Failed to load profile")
		return
	}
	httpjson.Write(w, http.StatusOK, view)
}
