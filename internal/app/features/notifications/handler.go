// internal/app/features/notifications/handler.go
package notifications

import (
	"github.com/rvetrivignesh/teamify/internal/app/features/apierrors"
	"github.com/rvetrivignesh/teamify/internal/app/store/notifications"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the notifications
// feature.
type Handler struct {
	Notifications *notificationstore.Store
	ErrLog        *apierrors.ErrorLogger
	Log           *zap.Logger
}

// NewHandler constructs a notifications Handler.
func NewHandler(notifications *notificationstore.Store, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Notifications: notifications,
		ErrLog:        errLog,
		Log:           logger,
	}
}
