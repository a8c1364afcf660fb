package projects

import (
	"context"
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/normalize"
	"github.com/rvetrivignesh/teamify/internal/app/system/sanitize"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Domain         string      `json:"domain"`
	RepositoryLink string      `json:"repositoryLink"`
	SkillsRequired []string    `json:"skillsRequired"`
	Tasks          []taskInput `json:"tasks"`
}

// HandleCreate creates a project owned by the caller.
// POST /api/projects
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "create project: decode body failed", err, "Invalid request body")
		return
	}

	name := sanitize.Text(req.Name)
	if name == "" {
		httpjson.Message(w, http.StatusBadRequest, "Project name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	project, err := h.Projects.Create(ctx, models.Project{
		Name:           name,
		Description:    sanitize.Text(req.Description),
		Domain:         normalize.Domain(req.Domain),
		RepositoryLink: sanitize.Text(req.RepositoryLink),
		SkillsRequired: normalize.Skills(req.SkillsRequired),
		Tasks:          newTasks(req.Tasks),
		OwnerID:        user.ObjectID(),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create project failed", err, "Failed to create project")
		return
	}

	h.Log.Info("project created",
		zap.String("project_id", project.ID.Hex()),
		zap.String("owner_id", user.ID))

	h.respondWithProject(ctx, w, r, project, http.StatusCreated)
}
