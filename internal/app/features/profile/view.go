// internal/app/features/profile/view.go
package profile

import (
	"context"
	"time"

	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// profileView is a profile with its user resolved to a public user.
type profileView struct {
	ID           primitive.ObjectID `json:"id"`
	User         *models.PublicUser `json:"user,omitempty"`
	Bio          string             `json:"bio"`
	Skills       []string           `json:"skills"`
	Achievements []string           `json:"achievements"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// render resolves the users behind the given profiles in one query and
// maps the profiles into views.
func (h *Handler) render(ctx context.Context, list []models.UserProfile) ([]profileView, error) {
	ids := make([]primitive.ObjectID, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.UserID)
	}

	users, err := h.Users.PublicByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]profileView, 0, len(list))
	for _, p := range list {
		v := profileView{
			ID:           p.ID,
			Bio:          p.Bio,
			Skills:       p.Skills,
			Achievements: p.Achievements,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		}
		if v.Skills == nil {
			v.Skills = []string{}
		}
		if v.Achievements == nil {
			v.Achievements = []string{}
		}
		if u, ok := users[p.UserID]; ok {
			v.User = &u
		}
		views = append(views, v)
	}
	return views, nil
}

// renderOne is the single-profile form of render.
func (h *Handler) renderOne(ctx context.Context, p models.UserProfile) (profileView, error) {
	views, err := h.render(ctx, []models.UserProfile{p})
	if err != nil {
		return profileView{}, err
	}
	return views[0], nil
}
