// internal/app/features/projects/handler.go
package projects

import (
	"github.com/rvetrivignesh/teamify/internal/app/features/apierrors"
	"github.com/rvetrivignesh/teamify/internal/app/store/profiles"
	"github.com/rvetrivignesh/teamify/internal/app/store/projects"
	"github.com/rvetrivignesh/teamify/internal/app/store/requests"
	"github.com/rvetrivignesh/teamify/internal/app/store/users"
	"github.com/rvetrivignesh/teamify/internal/app/system/outbox"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the projects feature:
// project CRUD, discovery, membership, and the task workflow.
type Handler struct {
	Projects *projectstore.Store
	Users    *userstore.Store
	Profiles *profilestore.Store
	Requests *requeststore.Store
	Notify   *outbox.Notifier
	ErrLog   *apierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a projects Handler.
func NewHandler(
	projects *projectstore.Store,
	users *userstore.Store,
	profiles *profilestore.Store,
	requests *requeststore.Store,
	notify *outbox.Notifier,
	errLog *apierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Projects: projects,
		Users:    users,
		Profiles: profiles,
		Requests: requests,
		Notify:   notify,
		ErrLog:   errLog,
		Log:      logger,
	}
}
