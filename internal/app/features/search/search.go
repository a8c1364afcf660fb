package search

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
)

// searchResponse groups the three result sets of a query.
type searchResponse struct {
	Projects []models.Project    `json:"projects"`
	Users    []models.PublicUser `json:"users"`
	Domains  []string            `json:"domains"`
}

// HandleSearch runs a case-insensitive substring search across projects
// (name, description, skills, domain), users (username, email), and the
// distinct matching domain tags. An empty query returns empty sets
// rather than everything.
// GET /api/search?q=term
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		httpjson.Write(w, http.StatusOK, searchResponse{
			Projects: []models.Project{},
			Users:    []models.PublicUser{},
			Domains:  []string{},
		})
		return
	}

	// The query is user input headed into $regex; quote it so "c++"
	// searches for the literal string.
	pattern := regexp.QuoteMeta(q)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, err := h.Projects.Search(ctx, pattern)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "search: project query failed", err, "Search failed")
		return
	}
	users, err := h.Users.Search(ctx, pattern)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "search: user query failed", err, "Search failed")
		return
	}
	domains, err := h.Projects.Domains(ctx, pattern)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "search: domain query failed", err, "Search failed")
		return
	}

	httpjson.Write(w, http.StatusOK, searchResponse{
		Projects: projects,
		Users:    users,
		Domains:  domains,
	})
}
