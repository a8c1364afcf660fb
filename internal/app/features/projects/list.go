package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/normalize"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleList returns all projects, newest first, optionally filtered by
// domain.
// GET /api/projects?domain=web
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Projects.List(ctx, normalize.Domain(r.URL.Query().Get("domain")))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list projects failed", err, "Failed to load projects")
		return
	}

	h.respondWithProjects(ctx, w, r, list)
}

// HandleDomains returns the distinct domain tags across all projects.
// GET /api/projects/domains
func (h *Handler) HandleDomains(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	domains, err := h.Projects.Domains(ctx, "")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list domains failed", err, "Failed to load domains")
		return
	}

	httpjson.Write(w, http.StatusOK, domains)
}

// HandleRecommended returns projects matching the caller's profile
// skills, excluding projects they own or already joined. A caller with
// no profile (or no skills) gets an empty list.
// GET /api/projects/recommended
func (h *Handler) HandleRecommended(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	profile, err := h.Profiles.GetByUserID(ctx, user.ObjectID())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Write(w, http.StatusOK, []projectView{})
			return
		}
		h.ErrLog.LogServerError(w, r, "recommended: load profile failed", err, "Failed to load recommendations")
		return
	}
	if len(profile.Skills) == 0 {
		httpjson.Write(w, http.StatusOK, []projectView{})
		return
	}

	list, err := h.Projects.ListRecommended(ctx, profile.Skills, user.ObjectID())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "recommended: query failed", err, "Failed to load recommendations")
		return
	}

	h.respondWithProjects(ctx, w, r, list)
}

// HandleMine returns projects the caller owns or collaborates on.
// GET /api/projects/my-projects
func (h *Handler) HandleMine(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Projects.ListMine(ctx, user.ObjectID())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list my projects failed", err, "Failed to load projects")
		return
	}

	h.respondWithProjects(ctx, w, r, list)
}

// HandleByUser returns projects owned by the given user, newest first.
// GET /api/projects/user/{userId}
func (h *Handler) HandleByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userId"))
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Projects.ListByOwner(ctx, userID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list projects by owner failed", err, "Failed to load projects")
		return
	}

	h.respondWithProjects(ctx, w, r, list)
}

func (h *Handler) respondWithProjects(ctx context.Context, w http.ResponseWriter, r *http.Request, list []models.Project) {
	views, err := h.render(ctx, list)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "render projects failed", err, "Failed to load projects")
		return
	}
	httpjson.Write(w, http.StatusOK, views)
}
