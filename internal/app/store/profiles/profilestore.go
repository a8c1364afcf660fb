package profilestore

import (
	"context"
	"time"

	"github.com/rvetrivignesh/teamify/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_profiles")}
}

// GetByUserID loads the profile for a user.
// Returns mongo.ErrNoDocuments if the user has no profile yet.
func (s *Store) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := s.c.FindOne(ctx, bson.M{"user": userID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert creates or replaces the profile fields for a user and returns
// the stored document. Fields must already be sanitized and normalized
// by the caller.
func (s *Store) Upsert(ctx context.Context, userID primitive.ObjectID, bio string, skills, achievements []string) (*models.UserProfile, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"bio":          bio,
			"skills":       skills,
			"achievements": achievements,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"user":      userID,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var p models.UserProfile
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"user": userID}, update, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindBySkills returns profiles sharing at least one of the given skills,
// excluding the given user. Skills must already be lowercase.
func (s *Store) FindBySkills(ctx context.Context, skills []string, exclude primitive.ObjectID) ([]models.UserProfile, error) {
	filter := bson.M{
		"skills": bson.M{"$in": skills},
		"user":   bson.M{"$ne": exclude},
	}

	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := []models.UserProfile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
