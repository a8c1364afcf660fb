// internal/app/features/projects/routes.go
package projects

import "github.com/go-chi/chi/v5"

// Routes returns the projects subrouter; mounted under /api/projects
// behind the auth middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// CREATE / LIST
	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)

	// DISCOVERY (fixed paths before the {id} wildcard)
	r.Get("/domains", h.HandleDomains)
	r.Get("/recommended", h.HandleRecommended)
	r.Get("/my-projects", h.HandleMine)
	r.Get("/user/{userId}", h.HandleByUser)

	// SINGLE PROJECT
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	// MEMBERSHIP
	r.Post("/{id}/join", h.HandleJoin)
	r.Delete("/{id}/collaborators/{userId}", h.HandleRemoveCollaborator)

	// TASK WORKFLOW
	r.Post("/{id}/tasks/{taskId}/assign", h.HandleAssignTask)
	r.Post("/{id}/tasks/{taskId}/review", h.HandleReviewTask)
	r.Post("/{id}/tasks/{taskId}/approve", h.HandleApproveTask)
	r.Post("/{id}/tasks/{taskId}/reject", h.HandleRejectTask)
	r.Post("/{id}/tasks/{taskId}/unassign", h.HandleUnassignTask)

	return r
}
