package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeFetcher struct {
	users map[string]*SessionUser
}

func (f *fakeFetcher) FetchUser(_ context.Context, userID string) *SessionUser {
	return f.users[userID]
}

func newTestMiddleware(users map[string]*SessionUser) (*Middleware, *TokenManager) {
	tm := NewTokenManager("test-secret-key-0123456789abcdef", time.Hour)
	return NewMiddleware(tm, &fakeFetcher{users: users}, zap.NewNop()), tm
}

func okHandler(t *testing.T, want string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r)
		if !ok {
			t.Error("expected user in context")
			return
		}
		if u.Username != want {
			t.Errorf("expected username %q, got %q", want, u.Username)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, err := tm.Generate("65f0c0ffee0ddba11decade0", "gopher")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "65f0c0ffee0ddba11decade0" {
		t.Errorf("expected subject to round-trip, got %q", claims.Subject)
	}
	if claims.Username != "gopher" {
		t.Errorf("expected username to round-trip, got %q", claims.Username)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate("id", "gopher")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := NewTokenManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Error("expected verification with wrong secret to fail")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)
	token, err := tm.Generate("id", "gopher")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := tm.Verify(token); err == nil {
		t.Error("expected expired token to fail verification")
	}
}

func TestRequireSignedIn_ValidToken(t *testing.T) {
	userID := "65f0c0ffee0ddba11decade0"
	mw, tm := newTestMiddleware(map[string]*SessionUser{
		userID: {ID: userID, Username: "gopher", Email: "gopher@test.com"},
	})

	token, err := tm.Generate(userID, "gopher")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireSignedIn(okHandler(t, "gopher")).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestRequireSignedIn_MissingHeader(t *testing.T) {
	mw, _ := newTestMiddleware(nil)

	req := httptest.NewRequest("GET", "/api/notifications", nil)
	rec := httptest.NewRecorder()

	mw.RequireSignedIn(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not run without a token")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireSignedIn_MalformedHeader(t *testing.T) {
	mw, tm := newTestMiddleware(nil)
	token, _ := tm.Generate("id", "gopher")

	req := httptest.NewRequest("GET", "/api/notifications", nil)
	req.Header.Set("Authorization", token) // no "Bearer" prefix
	rec := httptest.NewRecorder()

	mw.RequireSignedIn(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not run with malformed header")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireSignedIn_VanishedUser(t *testing.T) {
	mw, tm := newTestMiddleware(map[string]*SessionUser{}) // fetcher finds nobody
	token, err := tm.Generate("65f0c0ffee0ddba11decade0", "gopher")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireSignedIn(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not run for a deleted user")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}
