package projectstore

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
	return &Store{c: db.Collection("projects")}
}

// Create inserts a new project. Name/domain/skills/tasks must already be
// normalized by the caller.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = primitive.NewObjectID()
	if p.SkillsRequired == nil {
		p.SkillsRequired = []string{}
	}
	if p.Tasks == nil {
		p.Tasks = []models.Task{}
	}
	if p.Collaborators == nil {
		p.Collaborators = []primitive.ObjectID{}
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetByID loads a project by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects, newest first, optionally filtered by
// domain (already lowercase).
func (s *Store) List(ctx context.Context, domain string) ([]models.Project, error) {
	filter := bson.M{}
	if domain != "" {
		filter["domain"] = domain
	}
	return s.find(ctx, filter, true)
}

// ListByOwner returns projects owned by the given user, newest first.
func (s *Store) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Project, error) {
	return s.find(ctx, bson.M{"owner": owner}, true)
}

// ListMine returns projects the user owns or collaborates on.
func (s *Store) ListMine(ctx context.Context, userID primitive.ObjectID) ([]models.Project, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"owner": userID},
		bson.M{"collaborators": userID},
	}}
	return s.find(ctx, filter, false)
}

// ListRecommended returns projects requiring at least one of the given
// skills, excluding those the user owns or has already joined.
func (s *Store) ListRecommended(ctx context.Context, skills []string, userID primitive.ObjectID) ([]models.Project, error) {
	filter := bson.M{
		"skillsRequired": bson.M{"$in": skills},
		"owner":          bson.M{"$ne": userID},
		"collaborators":  bson.M{"$ne": userID},
	}
	return s.find(ctx, filter, false)
}

// Domains returns the distinct domain tags across all projects,
// optionally restricted to those matching a regex pattern.
func (s *Store) Domains(ctx context.Context, pattern string) ([]string, error) {
	filter := bson.M{}
	if pattern != "" {
		filter["domain"] = primitive.Regex{Pattern: pattern, Options: "i"}
	}

	raw, err := s.c.Distinct(ctx, "domain", filter)
	if err != nil {
		return nil, err
	}

	domains := make([]string, 0, len(raw))
	for _, v := range raw {
		if d, ok := v.(string); ok {
			domains = append(domains, d)
		}
	}
	return domains, nil
}

// Search finds projects whose name, description, skills, or domain
// contains the (already regex-quoted) pattern, case-insensitively.
func (s *Store) Search(ctx context.Context, pattern string) ([]models.Project, error) {
	re := primitive.Regex{Pattern: pattern, Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"description": re},
		bson.M{"skillsRequired": re},
		bson.M{"domain": re},
	}}
	return s.find(ctx, filter, false)
}

// NamesByIDs returns project names keyed by ID. IDs that do not resolve
// are simply absent from the map.
func (s *Store) NamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	out := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	proj := options.Find().SetProjection(bson.M{"_id": 1, "name": 1})
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, proj)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.ID] = doc.Name
	}
	return out, cur.Err()
}

// Update rewrites the mutable fields of a project.
// Owner, collaborators, and timestamps are not touched here.
func (s *Store) Update(ctx context.Context, p *models.Project) error {
	set := bson.M{
		"name":           p.Name,
		"description":    p.Description,
		"domain":         p.Domain,
		"repositoryLink": p.RepositoryLink,
		"skillsRequired": p.SkillsRequired,
		"tasks":          p.Tasks,
		"updatedAt":      time.Now(),
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": set})
	return err
}

// UpdateTasks replaces a project's task list.
func (s *Store) UpdateTasks(ctx context.Context, id primitive.ObjectID, tasks []models.Task) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"tasks":     tasks,
		"updatedAt": time.Now(),
	}})
	return err
}

// AddCollaborator adds a user to the collaborator set. $addToSet keeps
// the list duplicate-free even if two accepts race.
func (s *Store) AddCollaborator(ctx context.Context, id, userID primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$addToSet": bson.M{"collaborators": userID},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
	return err
}

// RemoveCollaborator removes a user from the collaborator set.
func (s *Store) RemoveCollaborator(ctx context.Context, id, userID primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$pull": bson.M{"collaborators": userID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	return err
}

// Delete removes a project. Requests and notifications referencing it
// are intentionally left in place.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) find(ctx context.Context, filter bson.M, newestFirst bool) ([]models.Project, error) {
	opts := options.Find()
	if newestFirst {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
