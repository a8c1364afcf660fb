// internal/app/features/collaboration/view.go
package collaboration

import (
	"context"
	"time"

	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userRef is the minimal user shape embedded in a request view.
type userRef struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
}

// projectRef is the minimal project shape embedded in a request view.
type projectRef struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// requestView is a collaboration request enriched with the usernames of
// both parties and the project name.
type requestView struct {
	ID        primitive.ObjectID `json:"id"`
	Sender    userRef            `json:"sender"`
	Receiver  userRef            `json:"receiver"`
	Project   projectRef         `json:"project"`
	Status    string             `json:"status"`
	Type      string             `json:"type"`
	Message   string             `json:"message,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// render resolves every user and project referenced by the requests in
// two queries and maps them into views. Requests pointing at deleted
// projects keep an empty project name.
func (h *Handler) render(ctx context.Context, list []models.CollaborationRequest) ([]requestView, error) {
	userSet := map[primitive.ObjectID]struct{}{}
	projectSet := map[primitive.ObjectID]struct{}{}
	for _, req := range list {
		userSet[req.SenderID] = struct{}{}
		userSet[req.ReceiverID] = struct{}{}
		projectSet[req.ProjectID] = struct{}{}
	}

	userIDs := make([]primitive.ObjectID, 0, len(userSet))
	for id := range userSet {
		userIDs = append(userIDs, id)
	}
	projectIDs := make([]primitive.ObjectID, 0, len(projectSet))
	for id := range projectSet {
		projectIDs = append(projectIDs, id)
	}

	users, err := h.Users.PublicByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	names, err := h.Projects.NamesByIDs(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	views := make([]requestView, 0, len(list))
	for _, req := range list {
		views = append(views, requestView{
			ID:        req.ID,
			Sender:    userRef{ID: req.SenderID, Username: users[req.SenderID].Username},
			Receiver:  userRef{ID: req.ReceiverID, Username: users[req.ReceiverID].Username},
			Project:   projectRef{ID: req.ProjectID, Name: names[req.ProjectID]},
			Status:    req.Status,
			Type:      req.Type,
			Message:   req.Message,
			CreatedAt: req.CreatedAt,
			UpdatedAt: req.UpdatedAt,
		})
	}
	return views, nil
}

// renderOne is the single-request form of render.
func (h *Handler) renderOne(ctx context.Context, req models.CollaborationRequest) (requestView, error) {
	views, err := h.render(ctx, []models.CollaborationRequest{req})
	if err != nil {
		return requestView{}, err
	}
	return views[0], nil
}
