package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rvetrivignesh/teamify/internal/app/system/authutil"
	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with a bcrypt-hashed password.
func (f *Fixtures) CreateUser(ctx context.Context, username, email, password string) models.User {
	f.t.Helper()

	hash, err := authutil.HashPassword(password)
	if err != nil {
		f.t.Fatalf("hash test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("create test user: %v", err)
	}
	return user
}

// CreateProject creates a test project owned by the given user.
// taskTitles become pending unassigned tasks with generated ids.
func (f *Fixtures) CreateProject(ctx context.Context, owner primitive.ObjectID, name string, taskTitles ...string) models.Project {
	f.t.Helper()

	tasks := make([]models.Task, 0, len(taskTitles))
	for _, title := range taskTitles {
		tasks = append(tasks, models.Task{
			ID:     uuid.NewString(),
			Title:  title,
			Status: models.TaskPending,
		})
	}

	now := time.Now().UTC()
	project := models.Project{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Description:    "a test project",
		Domain:         "web",
		SkillsRequired: []string{"go"},
		Tasks:          tasks,
		Collaborators:  []primitive.ObjectID{},
		OwnerID:        owner,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, project); err != nil {
		f.t.Fatalf("create test project: %v", err)
	}
	return project
}

// AddCollaborator pushes a user onto the project's collaborator list.
func (f *Fixtures) AddCollaborator(ctx context.Context, projectID, userID primitive.ObjectID) {
	f.t.Helper()

	_, err := f.db.Collection("projects").UpdateByID(ctx, projectID,
		map[string]any{"$addToSet": map[string]any{"collaborators": userID}})
	if err != nil {
		f.t.Fatalf("add test collaborator: %v", err)
	}
}

// SetTask replaces the task with the same id on the project, for
// arranging mid-workflow states.
func (f *Fixtures) SetTask(ctx context.Context, projectID primitive.ObjectID, task models.Task) {
	f.t.Helper()

	_, err := f.db.Collection("projects").UpdateOne(ctx,
		map[string]any{"_id": projectID, "tasks.id": task.ID},
		map[string]any{"$set": map[string]any{"tasks.$": task}})
	if err != nil {
		f.t.Fatalf("set test task: %v", err)
	}
}

// CreateRequest creates a collaboration request in the given state.
func (f *Fixtures) CreateRequest(ctx context.Context, sender, receiver, project primitive.ObjectID, reqType, status string) models.CollaborationRequest {
	f.t.Helper()

	now := time.Now().UTC()
	request := models.CollaborationRequest{
		ID:         primitive.NewObjectID(),
		SenderID:   sender,
		ReceiverID: receiver,
		ProjectID:  project,
		Status:     status,
		Type:       reqType,
		Message:    "a test message",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("collaboration_requests").InsertOne(ctx, request); err != nil {
		f.t.Fatalf("create test request: %v", err)
	}
	return request
}

// CreateProfile creates a user profile with the given skills.
func (f *Fixtures) CreateProfile(ctx context.Context, userID primitive.ObjectID, bio string, skills ...string) models.UserProfile {
	f.t.Helper()

	if skills == nil {
		skills = []string{}
	}

	now := time.Now().UTC()
	profile := models.UserProfile{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		Bio:          bio,
		Skills:       skills,
		Achievements: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("user_profiles").InsertOne(ctx, profile); err != nil {
		f.t.Fatalf("create test profile: %v", err)
	}
	return profile
}

// CreateNotification creates a notification for the given recipient.
func (f *Fixtures) CreateNotification(ctx context.Context, recipient primitive.ObjectID, message, notifType string) models.Notification {
	f.t.Helper()

	now := time.Now().UTC()
	notification := models.Notification{
		ID:          primitive.NewObjectID(),
		RecipientID: recipient,
		Message:     message,
		Type:        notifType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("notifications").InsertOne(ctx, notification); err != nil {
		f.t.Fatalf("create test notification: %v", err)
	}
	return notification
}
