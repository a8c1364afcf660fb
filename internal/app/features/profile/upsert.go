package profile

import (
	"context"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/normalize"
	"github.com/rvetrivignesh/teamify/internal/app/system/sanitize"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
)

type upsertRequest struct {
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	Achievements []string `json:"achievements"`
}

// HandleUpsert creates or updates the caller's profile.
// POST /api/profile
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req upsertRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "upsert profile: decode body failed", err, "Invalid request body")
		return
	}

	bio := sanitize.Text(req.Bio)
	if utf8.RuneCountInString(bio) > models.MaxBioLength {
		httpjson.Message(w, http.StatusBadRequest,
			fmt.Sprintf("Bio must be at most %d characters", models.MaxBioLength))
		return
	}

	achievements := make([]string, 0, len(req.Achievements))
	for _, a := range req.Achievements {
		if a = sanitize.Text(a); a != "" {
			achievements = append(achievements, a)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Profiles.Upsert(ctx, user.ObjectID(), bio, normalize.Skills(req.Skills), achievements)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "upsert profile failed", err, "Failed to save profile")
		return
	}

	view, err := h.renderOne(ctx, *p)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "render profile failed", err, "Failed to load profile")
		return
	}
	httpjson.Write(w, http.StatusOK, view)
}
