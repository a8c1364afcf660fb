// internal/app/features/accounts/handler.go
package accounts

import (
	"github.com/rvetrivignesh/teamify/internal/app/features/apierrors"
	"github.com/rvetrivignesh/teamify/internal/app/store/users"
	"github.com/rvetrivignesh/teamify/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the accounts feature
// (registration and login).
type Handler struct {
	Users  *userstore.Store
	Tokens *auth.TokenManager
	ErrLog *apierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs an accounts Handler.
func NewHandler(users *userstore.Store, tokens *auth.TokenManager, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		Tokens: tokens,
		ErrLog: errLog,
		Log:    logger,
	}
}

// authResponse is the body returned by both register and login.
type authResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
