package projects

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rvetrivignesh/teamify/internal/app/policy/projectpolicy"
	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/normalize"
	"github.com/rvetrivignesh/teamify/internal/app/system/sanitize"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
)

// updateRequest carries the mutable project fields. Pointer fields
// distinguish "absent" from "set to empty".
type updateRequest struct {
	Name           *string      `json:"name"`
	Description    *string      `json:"description"`
	Domain         *string      `json:"domain"`
	RepositoryLink *string      `json:"repositoryLink"`
	SkillsRequired *[]string    `json:"skillsRequired"`
	Tasks          *[]taskInput `json:"tasks"`
}

// HandleUpdate applies a partial update to a project. Owner only.
// PUT /api/projects/{id}
//
// The task list, when present, replaces the project's tasks: entries
// carrying the id of an existing task keep that task's status and
// assignee (only the title changes); entries without an id become new
// pending tasks. Task state never moves through this endpoint — the
// workflow routes own transitions.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "update project: decode body failed", err, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	project, ok := h.loadProject(ctx, w, r)
	if !ok {
		return
	}

	if !projectpolicy.CanModifyProject(project, user.ObjectID()) {
		h.ErrLog.LogForbidden(w, r, "update project: caller is not the owner", "Not authorized to update this project")
		return
	}

	if req.Name != nil {
		name := sanitize.Text(*req.Name)
		if name == "" {
			httpjson.Message(w, http.StatusBadRequest, "Project name cannot be empty")
			return
		}
		project.Name = name
	}
	if req.Description != nil {
		project.Description = sanitize.Text(*req.Description)
	}
	if req.Domain != nil {
		project.Domain = normalize.Domain(*req.Domain)
	}
	if req.RepositoryLink != nil {
		project.RepositoryLink = sanitize.Text(*req.RepositoryLink)
	}
	if req.SkillsRequired != nil {
		project.SkillsRequired = normalize.Skills(*req.SkillsRequired)
	}
	if req.Tasks != nil {
		project.Tasks = mergeTasks(project.Tasks, *req.Tasks)
	}

	if err := h.Projects.Update(ctx, project); err != nil {
		h.ErrLog.LogServerError(w, r, "update project failed", err, "Failed to update project")
		return
	}

	h.respondWithProject(ctx, w, r, *project, http.StatusOK)
}

// mergeTasks builds the replacement task list for an update. Existing
// tasks keep their id, status, and assignee; unknown or id-less entries
// start fresh as pending.
func mergeTasks(existing []models.Task, inputs []taskInput) []models.Task {
	byID := make(map[string]models.Task, len(existing))
	for _, t := range existing {
		byID[t.ID] = t
	}

	tasks := make([]models.Task, 0, len(inputs))
	for _, in := range inputs {
		title := sanitize.Text(in.Title)
		if title == "" {
			continue
		}
		if prev, ok := byID[in.ID]; ok {
			prev.Title = title
			tasks = append(tasks, prev)
			continue
		}
		tasks = append(tasks, models.Task{
			ID:     uuid.NewString(),
			Title:  title,
			Status: models.TaskPending,
		})
	}
	return tasks
}
