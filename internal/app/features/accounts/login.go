package accounts

import (
	"context"
	"errors"
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/system/authutil"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/normalize"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and returns a signed token.
// POST /api/auth/login
//
// A missing account and a wrong password produce the same 401 so the
// endpoint cannot be used to probe which emails are registered.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "login: decode body failed", err, "Invalid request body")
		return
	}

	email := normalize.Email(req.Email)
	if email == "" || req.Password == "" {
		httpjson.Message(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.ErrLog.LogServerError(w, r, "login: load user failed", err, "Login failed")
		return
	}

	if !authutil.CheckPassword(user.Password, req.Password) {
		httpjson.Message(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Generate(user.ID.Hex(), user.Username)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "login: sign token failed", err, "Login failed")
		return
	}

	h.Log.Info("user logged in", zap.String("user_id", user.ID.Hex()))

	httpjson.Write(w, http.StatusOK, authResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}
