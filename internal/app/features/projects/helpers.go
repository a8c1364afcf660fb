// internal/app/features/projects/helpers.go
package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/sanitize"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// loadProject resolves the {id} path parameter to a project. On any
// failure it writes the response itself and returns ok=false.
func (h *Handler) loadProject(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Message(w, http.StatusNotFound, "Project not found")
		return nil, false
	}

	p, err := h.Projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "Project not found")
			return nil, false
		}
		h.ErrLog.LogServerError(w, r, "load project failed", err, "Failed to load project")
		return nil, false
	}
	return p, true
}

// taskInput is the task shape accepted on create and update.
type taskInput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// newTasks turns task inputs into fresh pending tasks with generated
// ids. Inputs with an empty title are dropped.
func newTasks(inputs []taskInput) []models.Task {
	tasks := make([]models.Task, 0, len(inputs))
	for _, in := range inputs {
		title := sanitize.Text(in.Title)
		if title == "" {
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

// respondWithProject renders the project and writes it with the given
// status.
func (h *Handler) respondWithProject(ctx context.Context, w http.ResponseWriter, r *http.Request, p models.Project, status int) {
	view, err := h.renderOne(ctx, p)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "render project failed", err, "Failed to load project")
		return
	}
	httpjson.Write(w, status, view)
}
