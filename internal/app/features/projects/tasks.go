// internal/app/features/projects/tasks.go
package projects

// Task workflow transitions. Each handler loads the project, locates
// the task by its id, checks the caller against the policy, applies the
// transition, and persists the full task list. Every success response
// is the updated project with assignees resolved.

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rvetrivignesh/teamify/internal/app/policy/projectpolicy"
	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/sanitize"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.uber.org/zap"
)

// loadProjectTask resolves {id} and {taskId} to a project and one of
// its tasks. On failure it writes the response and returns ok=false.
// The returned *models.Task points into project.Tasks, so mutations
// through it land in the slice that gets persisted.
func (h *Handler) loadProjectTask(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Project, *models.Task, bool) {
	project, ok := h.loadProject(ctx, w, r)
	if !ok {
		return nil, nil, false
	}

	task := project.TaskByID(chi.URLParam(r, "taskId"))
	if task == nil {
		httpjson.Message(w, http.StatusNotFound, "Task not found")
		return nil, nil, false
	}
	return project, task, true
}

// saveTasks persists the project's task list and responds with the
// rendered project.
func (h *Handler) saveTasks(ctx context.Context, w http.ResponseWriter, r *http.Request, project *models.Project) {
	if err := h.Projects.UpdateTasks(ctx, project.ID, project.Tasks); err != nil {
		h.ErrLog.LogServerError(w, r, "save tasks failed", err, "Failed to update task")
		return
	}
	h.respondWithProject(ctx, w, r, *project, http.StatusOK)
}

// HandleAssignTask lets a project member take an unassigned pending
// task. A member may hold at most one task in Doing or Review per
// project.
// POST /api/projects/{id}/tasks/{taskId}/assign
func (h *Handler) HandleAssignTask(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	project, task, ok := h.loadProjectTask(ctx, w, r)
	if !ok {
		return
	}

	callerID := user.ObjectID()
	if !projectpolicy.CanWorkOnTasks(project, callerID) {
		h.ErrLog.LogForbidden(w, r, "assign task: caller is not a member", "Not authorized to work on this project")
		return
	}
	if task.AssignedTo != nil {
		httpjson.Message(w, http.StatusBadRequest, "Task is already assigned")
		return
	}
	if task.Status != models.TaskPending {
		httpjson.Message(w, http.StatusBadRequest, "Task is not available")
		return
	}
	if projectpolicy.HasActiveTask(project, callerID) {
		httpjson.Message(w, http.StatusBadRequest, "You already have an active task.")
		return
	}

	task.AssignedTo = &callerID
	task.Status = models.TaskDoing

	h.Log.Info("task assigned",
		zap.String("project_id", project.ID.Hex()),
		zap.String("task_id", task.ID),
		zap.String("user_id", user.ID))

	h.saveTasks(ctx, w, r, project)
}

// HandleReviewTask moves the caller's task from Doing to Review and
// tells the owner.
// POST /api/projects/{id}/tasks/{taskId}/review
func (h *Handler) HandleReviewTask(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	project, task, ok := h.loadProjectTask(ctx, w, r)
	if !ok {
		return
	}

	callerID := user.ObjectID()
	if !projectpolicy.IsAssignee(task, callerID) {
		h.ErrLog.LogForbidden(w, r, "review task: caller is not the assignee", "Only the assignee can submit this task for review")
		return
	}
	if task.Status != models.TaskDoing {
		httpjson.Message(w, http.StatusBadRequest, "Task is not in progress")
		return
	}

	task.Status = models.TaskReview

	if !project.IsOwner(callerID) {
		h.Notify.Send(ctx, models.Notification{
			RecipientID: project.OwnerID,
			Message:     fmt.Sprintf("%s submitted %q for review in %q", user.Username, task.Title, project.Name),
			Type:        models.NotifyTaskReview,
			Target:      models.ProjectTarget(project.ID),
		})
	}

	h.saveTasks(ctx, w, r, project)
}

// HandleApproveTask moves a reviewed task to Done. Owner only.
// POST /api/projects/{id}/tasks/{taskId}/approve
func (h *Handler) HandleApproveTask(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	project, task, ok := h.loadProjectTask(ctx, w, r)
	if !ok {
		return
	}

	callerID := user.ObjectID()
	if !project.IsOwner(callerID) {
		h.ErrLog.LogForbidden(w, r, "approve task: caller is not the owner", "Only the project owner can approve tasks")
		return
	}
	if task.Status != models.TaskReview {
		httpjson.Message(w, http.StatusBadRequest, "Task is not in review")
		return
	}

	assignee := task.AssignedTo
	task.Status = models.TaskDone

	if assignee != nil && *assignee != callerID {
		h.Notify.Send(ctx, models.Notification{
			RecipientID: *assignee,
			Message:     fmt.Sprintf("Your task %q in %q was approved!", task.Title, project.Name),
			Type:        models.NotifyInfo,
			Target:      models.ProjectTarget(project.ID),
		})
	}

	h.saveTasks(ctx, w, r, project)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// HandleRejectTask sends a reviewed task back to Doing with a reason.
// Owner only. The assignee keeps the task and gets a task_rejected
// notification carrying the reason.
// POST /api/projects/{id}/tasks/{taskId}/reject
func (h *Handler) HandleRejectTask(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req rejectRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "reject task: decode body failed", err, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	project, task, ok := h.loadProjectTask(ctx, w, r)
	if !ok {
		return
	}

	callerID := user.ObjectID()
	if !project.IsOwner(callerID) {
		h.ErrLog.LogForbidden(w, r, "reject task: caller is not the owner", "Only the project owner can reject tasks")
		return
	}
	if task.Status != models.TaskReview {
		httpjson.Message(w, http.StatusBadRequest, "Task is not in review")
		return
	}

	assignee := task.AssignedTo
	task.Status = models.TaskDoing

	if assignee != nil && *assignee != callerID {
		h.Notify.Send(ctx, models.Notification{
			RecipientID: *assignee,
			Message:     fmt.Sprintf("Your task %q in %q needs more work", task.Title, project.Name),
			Reason:      sanitize.Text(req.Reason),
			Type:        models.NotifyTaskRejected,
			Target:      models.ProjectTarget(project.ID),
		})
	}

	h.saveTasks(ctx, w, r, project)
}

// HandleUnassignTask drops a task back to Pending with no assignee.
// The assignee can give up their own task; the owner can pull anyone
// off a task. Unassigning a Done task reopens it.
// POST /api/projects/{id}/tasks/{taskId}/unassign
func (h *Handler) HandleUnassignTask(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	project, task, ok := h.loadProjectTask(ctx, w, r)
	if !ok {
		return
	}

	if !projectpolicy.CanUnassign(project, task, user.ObjectID()) {
		h.ErrLog.LogForbidden(w, r, "unassign task: caller may not unassign", "Not authorized to unassign this task")
		return
	}

	task.AssignedTo = nil
	task.Status = models.TaskPending

	h.saveTasks(ctx, w, r, project)
}
