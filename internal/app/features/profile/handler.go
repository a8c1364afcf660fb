// internal/app/features/profile/handler.go
package profile

import (
	"github.com/rvetrivignesh/teamify/internal/app/features/apierrors"
	"github.com/rvetrivignesh/teamify/internal/app/store/profiles"
	"github.com/rvetrivignesh/teamify/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the profile feature.
type Handler struct {
	Profiles *profilestore.Store
	Users    *userstore.Store
	ErrLog   *apierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a profile Handler.
func NewHandler(profiles *profilestore.Store, users *userstore.Store, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Profiles: profiles,
		Users:    users,
		ErrLog:   errLog,
		Log:      logger,
	}
}
