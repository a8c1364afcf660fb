// internal/app/features/search/handler.go
package search

import (
	"github.com/rvetrivignesh/teamify/internal/app/features/apierrors"
	"github.com/rvetrivignesh/teamify/internal/app/store/projects"
	"github.com/rvetrivignesh/teamify/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the search feature.
type Handler struct {
	Projects *projectstore.Store
	Users    *userstore.Store
	ErrLog   *apierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a search Handler.
func NewHandler(projects *projectstore.Store, users *userstore.Store, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Projects: projects,
		Users:    users,
		ErrLog:   errLog,
		Log:      logger,
	}
}
