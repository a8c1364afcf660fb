// Package projectpolicy provides authorization policies for project and
// task operations.
//
// Authorization rules:
//   - Only the project owner can edit or delete the project, invite
//     users, respond to join requests, remove collaborators, and
//     approve or reject reviewed tasks
//   - The owner and collaborators can self-assign and work on tasks
//   - A member may hold at most one active task (doing or in review)
//     per project at a time
//   - Only the task's assignee (or the owner) can move it through the
//     workflow
package projectpolicy

import (
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanModifyProject reports whether the user can edit or delete the
// project. Only the owner can.
func CanModifyProject(p *models.Project, userID primitive.ObjectID) bool {
	return p.IsOwner(userID)
}

// CanWorkOnTasks reports whether the user can take and advance tasks on
// the project. Owners and collaborators can; everyone else cannot.
func CanWorkOnTasks(p *models.Project, userID primitive.ObjectID) bool {
	return p.IsOwner(userID) || p.IsCollaborator(userID)
}

// HasActiveTask reports whether the user already holds a task that is
// doing or in review on this project.
func HasActiveTask(p *models.Project, userID primitive.ObjectID) bool {
	for _, t := range p.Tasks {
		if t.Active() && *t.AssignedTo == userID {
			return true
		}
	}
	return false
}

// CanAssign reports whether the user may take the given task: they must
// be a member, the task must be unassigned and pending, and they must
// not already hold an active task on the project.
func CanAssign(p *models.Project, t *models.Task, userID primitive.ObjectID) bool {
	if !CanWorkOnTasks(p, userID) {
		return false
	}
	if t.AssignedTo != nil || t.Status != models.TaskPending {
		return false
	}
	return !HasActiveTask(p, userID)
}

// IsAssignee reports whether the task is assigned to the user.
func IsAssignee(t *models.Task, userID primitive.ObjectID) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}

// CanSubmitForReview reports whether the user can move the task from
// doing to review. Only the assignee can.
func CanSubmitForReview(t *models.Task, userID primitive.ObjectID) bool {
	return IsAssignee(t, userID) && t.Status == models.TaskDoing
}

// CanJudgeTask reports whether the user can approve or reject the
// reviewed task. Only the project owner can, and only while the task is
// in review.
func CanJudgeTask(p *models.Project, t *models.Task, userID primitive.ObjectID) bool {
	return p.IsOwner(userID) && t.Status == models.TaskReview
}

// CanUnassign reports whether the user can drop the task back to
// pending. The assignee can give a task up; the owner can pull anyone
// off a task, including reopening a Done task.
func CanUnassign(p *models.Project, t *models.Task, userID primitive.ObjectID) bool {
	if t.AssignedTo == nil {
		return false
	}
	return IsAssignee(t, userID) || p.IsOwner(userID)
}
