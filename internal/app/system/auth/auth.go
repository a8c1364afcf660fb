// Package auth resolves bearer tokens to user identities.
//
// Register/login issue an HS256 JWT carrying the user's id and username;
// every other route runs RequireSignedIn, which verifies the token and
// loads a fresh SessionUser into the request context so renames and
// deleted accounts take effect immediately.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SessionUser is the resolved caller identity injected into r.Context().
type SessionUser struct {
	ID       string
	Username string
	Email    string
}

// ObjectID parses the user's hex id. The id always comes from the users
// collection, so it parses; a corrupted value yields NilObjectID, which
// matches nothing downstream.
func (u *SessionUser) ObjectID() primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(u.ID)
	return id
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the caller & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a user directly into the request context,
// bypassing token verification. For handler tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// UserFetcher loads fresh user data for a verified token subject.
// Returning nil means the user no longer exists and the token is dead.
type UserFetcher interface {
	FetchUser(ctx context.Context, userID string) *SessionUser
}

// Middleware guards routes with bearer-token authentication.
type Middleware struct {
	tokens  *TokenManager
	fetcher UserFetcher
	log     *zap.Logger
}

// NewMiddleware builds the auth middleware from a token manager and a
// user fetcher (normally userstore.NewFetcher).
func NewMiddleware(tokens *TokenManager, fetcher UserFetcher, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, fetcher: fetcher, log: logger}
}

// RequireSignedIn verifies the Authorization header and injects the
// resolved SessionUser. Missing, malformed, expired, or orphaned tokens
// all get a 401 with a JSON body; the distinction is logged, not leaked.
func (m *Middleware) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			writeUnauthorized(w, "Not authorized, no token")
			return
		}

		claims, err := m.tokens.Verify(raw)
		if err != nil {
			m.log.Debug("token verification failed", zap.Error(err))
			writeUnauthorized(w, "Not authorized, token failed")
			return
		}

		u := m.fetcher.FetchUser(r.Context(), claims.Subject)
		if u == nil {
			writeUnauthorized(w, "Not authorized, token failed")
			return
		}

		next.ServeHTTP(w, withUser(r, u))
	})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
