// internal/app/features/projects/view.go
package projects

import (
	"context"
	"time"

	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// taskView is a task with its assignee resolved to a public user.
type taskView struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Status     string             `json:"status"`
	AssignedTo *models.PublicUser `json:"assignedTo,omitempty"`
}

// projectView is a project with owner, collaborators, and task
// assignees resolved to public users.
type projectView struct {
	ID             primitive.ObjectID  `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Domain         string              `json:"domain"`
	RepositoryLink string              `json:"repositoryLink,omitempty"`
	SkillsRequired []string            `json:"skillsRequired"`
	Tasks          []taskView          `json:"tasks"`
	Owner          *models.PublicUser  `json:"owner,omitempty"`
	Collaborators  []models.PublicUser `json:"collaborators"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// render resolves every user referenced by the given projects in one
// query and maps the projects into views.
func (h *Handler) render(ctx context.Context, list []models.Project) ([]projectView, error) {
	idSet := map[primitive.ObjectID]struct{}{}
	for _, p := range list {
		idSet[p.OwnerID] = struct{}{}
		for _, c := range p.Collaborators {
			idSet[c] = struct{}{}
		}
		for _, t := range p.Tasks {
			if t.AssignedTo != nil {
				idSet[*t.AssignedTo] = struct{}{}
			}
		}
	}

	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := h.Users.PublicByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]projectView, 0, len(list))
	for _, p := range list {
		views = append(views, buildView(p, users))
	}
	return views, nil
}

// renderOne is the single-project form of render.
func (h *Handler) renderOne(ctx context.Context, p models.Project) (projectView, error) {
	views, err := h.render(ctx, []models.Project{p})
	if err != nil {
		return projectView{}, err
	}
	return views[0], nil
}

func buildView(p models.Project, users map[primitive.ObjectID]models.PublicUser) projectView {
	v := projectView{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Domain:         p.Domain,
		RepositoryLink: p.RepositoryLink,
		SkillsRequired: p.SkillsRequired,
		Tasks:          make([]taskView, 0, len(p.Tasks)),
		Collaborators:  make([]models.PublicUser, 0, len(p.Collaborators)),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if v.SkillsRequired == nil {
		v.SkillsRequired = []string{}
	}

	if owner, ok := users[p.OwnerID]; ok {
		v.Owner = &owner
	}
	for _, id := range p.Collaborators {
		if u, ok := users[id]; ok {
			v.Collaborators = append(v.Collaborators, u)
		}
	}
	for _, t := range p.Tasks {
		tv := taskView{ID: t.ID, Title: t.Title, Status: t.Status}
		if t.AssignedTo != nil {
			if u, ok := users[*t.AssignedTo]; ok {
				tv.AssignedTo = &u
			}
		}
		v.Tasks = append(v.Tasks, tv)
	}
	return v
}
