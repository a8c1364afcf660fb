// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses. Pending is the initial state; the kanban flow is
// Pending → Doing → Review → Done, with Review → Doing on rejection
// and any state → Pending on unassign.
const (
	TaskPending = "Pending"
	TaskDoing   = "Doing"
	TaskReview  = "Review"
	TaskDone    = "Done"
)

// ValidTaskStatus reports whether s is one of the four kanban states.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskPending, TaskDoing, TaskReview, TaskDone:
		return true
	}
	return false
}

// Task is an embedded kanban card inside a Project. Tasks have their own
// stable identifier (a UUID assigned at creation) so handlers can address
// them without positional indexes.
type Task struct {
	ID         string              `bson:"id" json:"id"`
	Title      string              `bson:"title" json:"title"`
	Status     string              `bson:"status" json:"status"`
	AssignedTo *primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
}

// Active reports whether the task counts against its assignee's
// one-active-task budget (assigned and in Doing or Review).
func (t Task) Active() bool {
	return t.AssignedTo != nil && (t.Status == TaskDoing || t.Status == TaskReview)
}

// Project is a collaborative software project with an embedded task list.
//
// NOTE:
//   - Owner is immutable after creation.
//   - Collaborators has set semantics; the service adds members with
//     $addToSet so a double accept cannot duplicate an entry.
//   - Tasks lifecycle is bound to the project (deleting the project
//     deletes its tasks; requests and notifications are not cascaded).
type Project struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name           string               `bson:"name" json:"name"`
	Description    string               `bson:"description" json:"description"`
	Domain         string               `bson:"domain" json:"domain"` // lowercase
	RepositoryLink string               `bson:"repositoryLink,omitempty" json:"repositoryLink,omitempty"`
	SkillsRequired []string             `bson:"skillsRequired" json:"skillsRequired"`
	Tasks          []Task               `bson:"tasks" json:"tasks"`
	Collaborators  []primitive.ObjectID `bson:"collaborators" json:"collaborators"`
	OwnerID        primitive.ObjectID   `bson:"owner" json:"owner"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TaskByID returns a pointer into p.Tasks for the task with the given id,
// or nil if no such task exists.
func (p *Project) TaskByID(id string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// IsOwner reports whether userID owns the project.
func (p *Project) IsOwner(userID primitive.ObjectID) bool {
	return p.OwnerID == userID
}

// IsCollaborator reports whether userID is in the collaborator set.
func (p *Project) IsCollaborator(userID primitive.ObjectID) bool {
	for _, id := range p.Collaborators {
		if id == userID {
			return true
		}
	}
	return false
}
