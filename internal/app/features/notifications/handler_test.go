package notifications_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rvetrivignesh/teamify/internal/app/features/apierrors"
	"github.com/rvetrivignesh/teamify/internal/app/features/notifications"
	notificationstore "github.com/rvetrivignesh/teamify/internal/app/store/notifications"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"github.com/rvetrivignesh/teamify/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(db *mongo.Database) *notifications.Handler {
	logger := zap.NewNop()
	return notifications.NewHandler(notificationstore.New(db), apierrors.NewErrorLogger(logger), logger)
}

func TestHandleList_OwnOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	alice := fx.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	bob := fx.CreateUser(ctx, "bob", "bob@example.com", "secret123")

	fx.CreateNotification(ctx, alice.ID, "for alice", models.NotifyInfo)
	fx.CreateNotification(ctx, bob.ID, "for bob", models.NotifyInfo)

	req := testutil.WithUser(testutil.NewJSONRequest(t, "GET", "/api/notifications", nil), alice)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp []models.Notification
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp) != 1 || resp[0].Message != "for alice" {
		t.Errorf("list = %+v", resp)
	}
}

func TestHandleMarkRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	alice := fx.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	notif := fx.CreateNotification(ctx, alice.ID, "hello", models.NotifyInfo)

	markRead := func(caller models.User) *httptest.ResponseRecorder {
		req := testutil.WithUser(testutil.NewJSONRequest(t, "PUT", "/api/notifications/x/read", nil), caller)
		req = testutil.WithChiURLParam(req, "id", notif.ID.Hex())
		rec := httptest.NewRecorder()
		h.HandleMarkRead(rec, req)
		return rec
	}

	rec := markRead(alice)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp models.Notification
	testutil.DecodeJSON(t, rec, &resp)
	if !resp.IsRead {
		t.Error("notification should be read")
	}

	// Marking twice still succeeds.
	if rec := markRead(alice); rec.Code != http.StatusOK {
		t.Errorf("second mark: status = %d", rec.Code)
	}
}

func TestHandleMarkRead_NonRecipientUnauthorized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	alice := fx.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	bob := fx.CreateUser(ctx, "bob", "bob@example.com", "secret123")
	notif := fx.CreateNotification(ctx, alice.ID, "hello", models.NotifyInfo)

	req := testutil.WithUser(testutil.NewJSONRequest(t, "PUT", "/api/notifications/x/read", nil), bob)
	req = testutil.WithChiURLParam(req, "id", notif.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleMarkRead(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	stored, err := notificationstore.New(db).GetByID(ctx, notif.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.IsRead {
		t.Error("notification must stay unread")
	}
}

func TestHandleMarkRead_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)

	alice := testutil.NewFixtures(t, db).CreateUser(ctx, "alice", "alice@example.com", "secret123")

	req := testutil.WithUser(testutil.NewJSONRequest(t, "PUT", "/api/notifications/x/read", nil), alice)
	req = testutil.WithChiURLParam(req, "id", "not-a-hex-id")
	rec := httptest.NewRecorder()
	h.HandleMarkRead(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
