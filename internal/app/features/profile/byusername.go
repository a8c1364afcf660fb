package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleByUsername returns another user's profile looked up by
// username.
// GET /api/profile/u/{username}
func (h *Handler) HandleByUsername(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByUsername(ctx, chi.URLParam(r, "username"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "User not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "profile by username: load user failed", err, "Failed to load profile")
		return
	}

	p, err := h.Profiles.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "profile by username: load profile failed", err, "Failed to load profile")
		return
	}

	view, err := h.renderOne(ctx, *p)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "profile by username: render failed", err, "Failed to load profile")
		return
	}
	httpjson.Write(w, http.StatusOK, view)
}
