package accounts

import (
	"context"
	"errors"
	"net/http"

	"github.com/rvetrivignesh/teamify/internal/app/store/users"
	"github.com/rvetrivignesh/teamify/internal/app/system/authutil"
	"github.com/rvetrivignesh/teamify/internal/app/system/httpjson"
	"github.com/rvetrivignesh/teamify/internal/app/system/normalize"
	"github.com/rvetrivignesh/teamify/internal/app/system/timeouts"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.uber.org/zap"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new account and returns a signed token.
// POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "register: decode body failed", err, "Invalid request body")
		return
	}

	username := normalize.Username(req.Username)
	email := normalize.Email(req.Email)

	if username == "" || email == "" || req.Password == "" {
		httpjson.Message(w, http.StatusBadRequest, "Please provide username, email and password")
		return
	}
	if !authutil.ValidEmail(email) {
		httpjson.Message(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if !authutil.ValidPassword(req.Password) {
		httpjson.Message(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "register: hash password failed", err, "Registration failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Username: username,
		Email:    email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicate) {
			httpjson.Message(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.ErrLog.LogServerError(w, r, "register: create user failed", err, "Registration failed")
		return
	}

	token, err := h.Tokens.Generate(user.ID.Hex(), user.Username)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "register: sign token failed", err, "Registration failed")
		return
	}

	h.Log.Info("user registered", zap.String("user_id", user.ID.Hex()), zap.String("username", user.Username))

	httpjson.Write(w, http.StatusCreated, authResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}
