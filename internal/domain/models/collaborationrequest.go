// internal/domain/models/collaborationrequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collaboration request statuses. A request starts pending and is mutated
// exactly once, to accepted or rejected. Requests are never deleted.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// Collaboration request types. A join_request is sent by a user who wants
// into a project (receiver = project owner). An invitation is sent by the
// owner to a user (receiver = invited user).
const (
	RequestJoin   = "join_request"
	RequestInvite = "invitation"
)

// CollaborationRequest links a sender, a receiver, and a project through
// the accept/reject workflow.
type CollaborationRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   primitive.ObjectID `bson:"sender" json:"sender"`
	ReceiverID primitive.ObjectID `bson:"receiver" json:"receiver"`
	ProjectID  primitive.ObjectID `bson:"project" json:"project"`
	Status     string             `bson:"status" json:"status"`
	Type       string             `bson:"type" json:"type"`
	Message    string             `bson:"message,omitempty" json:"message,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// JoiningUser returns the user that accepting this request would add to
// the project: the sender of a join_request, the receiver of an
// invitation.
func (r CollaborationRequest) JoiningUser() primitive.ObjectID {
	if r.Type == RequestInvite {
		return r.ReceiverID
	}
	return r.SenderID
}
