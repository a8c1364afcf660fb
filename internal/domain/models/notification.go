// internal/domain/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types.
const (
	NotifyRequest      = "request"       // a collaboration request arrived
	NotifyResponse     = "response"      // a request was accepted/rejected
	NotifyInfo         = "info"          // general information (approval, removal)
	NotifyTaskReview   = "task_review"   // a task was submitted for review
	NotifyTaskRejected = "task_rejected" // a reviewed task was sent back
)

// Notification target kinds.
const (
	TargetProject = "project"
	TargetRequest = "request"
)

// NotificationTarget is the typed reference a notification points at.
// The kind discriminates what collection ID refers to, replacing an
// untyped relatedId that callers had to interpret from the notification
// type.
type NotificationTarget struct {
	Kind string             `bson:"kind" json:"kind"`
	ID   primitive.ObjectID `bson:"id" json:"id"`
}

// ProjectTarget builds a target pointing at a project.
func ProjectTarget(id primitive.ObjectID) *NotificationTarget {
	return &NotificationTarget{Kind: TargetProject, ID: id}
}

// RequestTarget builds a target pointing at a collaboration request.
func RequestTarget(id primitive.ObjectID) *NotificationTarget {
	return &NotificationTarget{Kind: TargetRequest, ID: id}
}

// Notification is an append-only per-user message. The only mutation
// ever applied is flipping IsRead from false to true.
type Notification struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	RecipientID primitive.ObjectID  `bson:"recipient" json:"recipient"`
	Message     string              `bson:"message" json:"message"`
	Reason      string              `bson:"reason,omitempty" json:"reason,omitempty"`
	Type        string              `bson:"type" json:"type"`
	Target      *NotificationTarget `bson:"target,omitempty" json:"target,omitempty"`
	IsRead      bool                `bson:"isRead" json:"isRead"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
