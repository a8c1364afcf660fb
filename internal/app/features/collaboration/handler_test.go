package collaboration_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rvetrivignesh/teamify/internal/app/features/apierrors"
	"github.com/rvetrivignesh/teamify/internal/app/features/collaboration"
	notificationstore "github.com/rvetrivignesh/teamify/internal/app/store/notifications"
	projectstore "github.com/rvetrivignesh/teamify/internal/app/store/projects"
	requeststore "github.com/rvetrivignesh/teamify/internal/app/store/requests"
	userstore "github.com/rvetrivignesh/teamify/internal/app/store/users"
	"github.com/rvetrivignesh/teamify/internal/app/system/outbox"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"github.com/rvetrivignesh/teamify/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(db *mongo.Database) *collaboration.Handler {
	logger := zap.NewNop()
	return collaboration.NewHandler(
		requeststore.New(db),
		projectstore.New(db),
		userstore.New(db),
		outbox.NewNotifier(notificationstore.New(db), logger, time.Minute),
		apierrors.NewErrorLogger(logger),
		logger,
	)
}

type requestResp struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Sender *struct {
		Username string `json:"username"`
	} `json:"sender"`
	Project *struct {
		Name string `json:"name"`
	} `json:"project"`
}

func TestHandleList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	alice := fx.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	bob := fx.CreateUser(ctx, "bob", "bob@example.com", "secret123")
	project := fx.CreateProject(ctx, bob.ID, "Chat App")

	fx.CreateRequest(ctx, alice.ID, bob.ID, project.ID, models.RequestJoin, models.RequestPending)
	fx.CreateRequest(ctx, bob.ID, alice.ID, project.ID, models.RequestInvite, models.RequestPending)

	req := testutil.WithUser(testutil.NewJSONRequest(t, "GET", "/api/collaboration", nil), alice)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Sent     []requestResp `json:"sent"`
		Received []requestResp `json:"received"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if len(resp.Sent) != 1 || resp.Sent[0].Type != models.RequestJoin {
		t.Errorf("sent = %+v", resp.Sent)
	}
	if len(resp.Received) != 1 || resp.Received[0].Type != models.RequestInvite {
		t.Errorf("received = %+v", resp.Received)
	}
	if resp.Sent[0].Project == nil || resp.Sent[0].Project.Name != "Chat App" {
		t.Errorf("project not resolved: %+v", resp.Sent[0].Project)
	}
}

func TestHandleGet_NonPartyUnauthorized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	alice := fx.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	bob := fx.CreateUser(ctx, "bob", "bob@example.com", "secret123")
	eve := fx.CreateUser(ctx, "eve", "eve@example.com", "secret123")
	project := fx.CreateProject(ctx, bob.ID, "Chat App")
	request := fx.CreateRequest(ctx, alice.ID, bob.ID, project.ID, models.RequestJoin, models.RequestPending)

	req := testutil.WithUser(testutil.NewJSONRequest(t, "GET", "/api/collaboration/x", nil), eve)
	req = testutil.WithChiURLParam(req, "id", request.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func respond(t *testing.T, h *collaboration.Handler, caller models.User, requestID, status string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.WithUser(testutil.NewJSONRequest(t, "PUT", "/api/collaboration/x",
		map[string]string{"status": status}), caller)
	req = testutil.WithChiURLParam(req, "id", requestID)
	rec := httptest.NewRecorder()
	h.HandleRespond(rec, req)
	return rec
}

func TestHandleRespond_AcceptJoin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	alice := fx.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	bob := fx.CreateUser(ctx, "bob", "bob@example.com", "secret123")
	project := fx.CreateProject(ctx, bob.ID, "Chat App")
	request := fx.CreateRequest(ctx, alice.ID, bob.ID, project.ID, models.RequestJoin, models.RequestPending)

	rec := respond(t, h, bob, request.ID.Hex(), models.RequestAccepted)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp requestResp
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Status != models.RequestAccepted {
		t.Errorf("status = %q, want %q", resp.Status, models.RequestAccepted)
	}

	// Accepting a join request adds the sender to the project.
	stored, err := projectstore.New(db).GetByID(ctx, project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.IsCollaborator(alice.ID) {
		t.Error("sender should be a collaborator after accept")
	}

	// The sender is told the outcome.
	notifs, err := notificationstore.New(db).ListByRecipient(ctx, alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 1 || notifs[0].Type != models.NotifyResponse {
		t.Fatalf("sender notifications = %+v", notifs)
	}

	// A request is responded to exactly once.
	rec = respond(t, h, bob, request.ID.Hex(), models.RequestRejected)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("second respond: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	stored2, err := requeststore.New(db).GetByID(ctx, request.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored2.Status != models.RequestAccepted {
		t.Errorf("status must stay %q, got %q", models.RequestAccepted, stored2.Status)
	}
}

func TestHandleRespond_AcceptInviteAddsReceiver(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	alice := fx.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	bob := fx.CreateUser(ctx, "bob", "bob@example.com", "secret123")
	project := fx.CreateProject(ctx, bob.ID, "Chat App")
	request := fx.CreateRequest(ctx, bob.ID, alice.ID, project.ID, models.RequestInvite, models.RequestPending)

	rec := respond(t, h, alice, request.ID.Hex(), models.RequestAccepted)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	stored, err := projectstore.New(db).GetByID(ctx, project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.IsCollaborator(alice.ID) {
		t.Error("invited user should be a collaborator after accept")
	}
}

func TestHandleRespond_NotificationWording(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	owner := fx.CreateUser(ctx, "owner", "owner@example.com", "secret123")
	project := fx.CreateProject(ctx, owner.ID, "Chat App")

	// Join-request responses do not name the responder; invitation
	// responses do.
	tests := []struct {
		name    string
		reqType string
		status  string
		want    string
	}{
		{"join accepted", models.RequestJoin, models.RequestAccepted,
			`Your request to join "Chat App" has been accepted!`},
		{"join rejected", models.RequestJoin, models.RequestRejected,
			`Your request to join "Chat App" has been rejected.`},
		{"invite accepted", models.RequestInvite, models.RequestAccepted,
			`accepted your invitation to join "Chat App"!`},
		{"invite declined", models.RequestInvite, models.RequestRejected,
			`declined your invitation to join "Chat App".`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := fx.CreateUser(ctx, "sender-"+tt.name, "sender-"+tt.name+"@example.com", "secret123")
			receiver := fx.CreateUser(ctx, "receiver-"+tt.name, "receiver-"+tt.name+"@example.com", "secret123")
			request := fx.CreateRequest(ctx, sender.ID, receiver.ID, project.ID, tt.reqType, models.RequestPending)

			rec := respond(t, h, receiver, request.ID.Hex(), tt.status)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}

			notifs, err := notificationstore.New(db).ListByRecipient(ctx, sender.ID)
			if err != nil {
				t.Fatal(err)
			}
			if len(notifs) != 1 {
				t.Fatalf("sender notifications = %+v", notifs)
			}

			want := tt.want
			if tt.reqType == models.RequestInvite {
				want = receiver.Username + " " + want
			}
			if notifs[0].Message != want {
				t.Errorf("message = %q, want %q", notifs[0].Message, want)
			}
		})
	}
}

func TestHandleRespond_NonReceiverUnauthorized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	alice := fx.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	bob := fx.CreateUser(ctx, "bob", "bob@example.com", "secret123")
	project := fx.CreateProject(ctx, bob.ID, "Chat App")
	request := fx.CreateRequest(ctx, alice.ID, bob.ID, project.ID, models.RequestJoin, models.RequestPending)

	// The sender cannot accept their own request.
	rec := respond(t, h, alice, request.ID.Hex(), models.RequestAccepted)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	stored, err := requeststore.New(db).GetByID(ctx, request.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != models.RequestPending {
		t.Errorf("status must stay pending, got %q", stored.Status)
	}
}

func TestHandleRespond_InvalidStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	alice := fx.CreateUser(ctx, "alice", "alice@example.com", "secret123")
	bob := fx.CreateUser(ctx, "bob", "bob@example.com", "secret123")
	project := fx.CreateProject(ctx, bob.ID, "Chat App")
	request := fx.CreateRequest(ctx, alice.ID, bob.ID, project.ID, models.RequestJoin, models.RequestPending)

	rec := respond(t, h, bob, request.ID.Hex(), "maybe")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleInvite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	owner := fx.CreateUser(ctx, "owner", "owner@example.com", "secret123")
	invitee := fx.CreateUser(ctx, "invitee", "invitee@example.com", "secret123")
	project := fx.CreateProject(ctx, owner.ID, "Chat App")

	invite := func(caller models.User, userID string) *httptest.ResponseRecorder {
		req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/api/collaboration/invite", map[string]string{
			"userId":    userID,
			"projectId": project.ID.Hex(),
			"message":   "join us",
		}), caller)
		rec := httptest.NewRecorder()
		h.HandleInvite(rec, req)
		return rec
	}

	// Only the owner can invite.
	if rec := invite(invitee, owner.ID.Hex()); rec.Code != http.StatusForbidden {
		t.Errorf("non-owner invite: status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	if rec := invite(owner, invitee.ID.Hex()); rec.Code != http.StatusCreated {
		t.Fatalf("invite: status = %d, body %s", rec.Code, rec.Body.String())
	}

	sent, err := requeststore.New(db).ListBySender(ctx, owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(sent) != 1 || sent[0].Type != models.RequestInvite || sent[0].ReceiverID != invitee.ID {
		t.Fatalf("sent requests = %+v", sent)
	}

	notifs, err := notificationstore.New(db).ListByRecipient(ctx, invitee.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 1 || notifs[0].Type != models.NotifyRequest {
		t.Fatalf("invitee notifications = %+v", notifs)
	}

	// A second invitation while one is pending is refused.
	if rec := invite(owner, invitee.ID.Hex()); rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate invite: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleInvite_AlreadyCollaborator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	h := newHandler(db)
	fx := testutil.NewFixtures(t, db)

	owner := fx.CreateUser(ctx, "owner", "owner@example.com", "secret123")
	collab := fx.CreateUser(ctx, "collab", "collab@example.com", "secret123")
	project := fx.CreateProject(ctx, owner.ID, "Chat App")
	fx.AddCollaborator(ctx, project.ID, collab.ID)

	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/api/collaboration/invite", map[string]string{
		"userId":    collab.ID.Hex(),
		"projectId": project.ID.Hex(),
	}), owner)
	rec := httptest.NewRecorder()
	h.HandleInvite(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
