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

// HandleRecommendations returns profiles sharing at least one skill
// with the caller, excluding the caller. A caller with no profile (or
// no skills) gets an empty list.
// GET /api/profile/recommendations
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	own, err := h.Profiles.GetByUserID(ctx, user.ObjectID())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Write(w, http.StatusOK, []profileView{})
			return
		}
		h.ErrLog.LogServerError(w, r, "recommendations: load own profile failed", err, "Failed to load recommendations")
		return
	}
	if len(own.Skills) == 0 {
		httpjson.Write(w, http.StatusOK, []profileView{})
		return
	}

	matches, err := h.Profiles.FindBySkills(ctx, own.Skills, user.ObjectID())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "recommendations: query failed", err, "Failed to load recommendations")
		return
	}

	views, err := h.render(ctx, matches)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "recommendations: render failed", err, "Failed to load recommendations")
		return
	}
	httpjson.Write(w, http.StatusOK, views)
}
