package requeststore

import (
	"context"
	"errors"
	"time"

	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAlreadyProcessed is returned when a respond call races a request
// that has already left the pending state.
var ErrAlreadyProcessed = errors.New("request already processed")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("collaboration_requests")}
}

// Create inserts a new pending request.
func (s *Store) Create(ctx context.Context, r models.CollaborationRequest) (models.CollaborationRequest, error) {
	r.ID = primitive.NewObjectID()
	r.Status = models.RequestPending

	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.CollaborationRequest{}, err
	}
	return r, nil
}

// GetByID loads a request by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CollaborationRequest, error) {
	var r models.CollaborationRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListBySender returns requests the user sent, newest first.
func (s *Store) ListBySender(ctx context.Context, sender primitive.ObjectID) ([]models.CollaborationRequest, error) {
	return s.find(ctx, bson.M{"sender": sender})
}

// ListByReceiver returns requests addressed to the user, newest first.
func (s *Store) ListByReceiver(ctx context.Context, receiver primitive.ObjectID) ([]models.CollaborationRequest, error) {
	return s.find(ctx, bson.M{"receiver": receiver})
}

// HasPendingJoin reports whether the sender already has a pending
// join_request on the project.
func (s *Store) HasPendingJoin(ctx context.Context, sender, project primitive.ObjectID) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"sender":  sender,
		"project": project,
		"type":    models.RequestJoin,
		"status":  models.RequestPending,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// HasPendingInvite reports whether the owner already has a pending
// invitation to the receiver on the project.
func (s *Store) HasPendingInvite(ctx context.Context, sender, receiver, project primitive.ObjectID) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"sender":   sender,
		"receiver": receiver,
		"project":  project,
		"type":     models.RequestInvite,
		"status":   models.RequestPending,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkResponded moves a pending request to accepted or rejected. The
// pending guard is in the filter, so of two racing responders exactly
// one wins; the loser gets ErrAlreadyProcessed.
func (s *Store) MarkResponded(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.RequestPending},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.CollaborationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := []models.CollaborationRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
