// internal/app/features/collaboration/handler.go
package collaboration

import (
	"github.com/rvetrivignesh/teamify/internal/app/features/apierrors"
	"github.com/rvetrivignesh/teamify/internal/app/store/projects"
	"github.com/rvetrivignesh/teamify/internal/app/store/requests"
	"github.com/rvetrivignesh/teamify/internal/app/store/users"
	"github.com/rvetrivignesh/teamify/internal/app/system/outbox"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the collaboration
// feature: listing, responding to, and sending requests/invitations.
type Handler struct {
	Requests *requeststore.Store
	Projects *projectstore.Store
	Users    *userstore.Store
	Notify   *outbox.Notifier
	ErrLog   *apierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a collaboration Handler.
func NewHandler(
	requests *requeststore.Store,
	projects *projectstore.Store,
	users *userstore.Store,
	notify *outbox.Notifier,
	errLog *apierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Requests: requests,
		Projects: projects,
		Users:    users,
		Notify:   notify,
		ErrLog:   errLog,
		Log:      logger,
	}
}
