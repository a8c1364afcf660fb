// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureUserProfiles(ctx, db); err != nil {
		problems = append(problems, "user_profiles: "+err.Error())
	}
	if err := ensureProjects(ctx, db); err != nil {
		problems = append(problems, "projects: "+err.Error())
	}
	if err := ensureCollaborationRequests(ctx, db); err != nil {
		problems = append(problems, "collaboration_requests: "+err.Error())
	}
	if err := ensureNotifications(ctx, db); err != nil {
		problems = append(problems, "notifications: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Mongo returns IndexOptionsConflict or NamespaceExists variants when an
// equivalent index already exists; those are fine for an idempotent pass.
func alreadyExistsErr(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "IndexOptionsConflict") ||
		strings.Contains(s, "IndexKeySpecsConflict") ||
		strings.Contains(s, "already exists")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if alreadyExistsErr(err) {
				zap.L().Debug("index already present",
					zap.String("collection", coll.Name()),
					zap.String("name", name))
				continue
			}
			zap.L().Warn("create index failed",
				zap.String("collection", coll.Name()),
				zap.String("name", name),
				zap.Error(err))
			errs = append(errs, coll.Name()+"("+name+"): "+err.Error())
			continue
		}
		zap.L().Info("ensured index",
			zap.String("collection", coll.Name()),
			zap.String("name", name))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Email and username must be unique across all users.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_username"),
		},
	})
}

func ensureUserProfiles(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("user_profiles")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One profile per user; also the lookup path for /profile/me.
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_profiles_user"),
		},
		// Skill-overlap recommendations use $in over skills.
		{
			Keys:    bson.D{{Key: "skills", Value: 1}},
			Options: options.Index().SetName("idx_profiles_skills"),
		},
	})
}

func ensureProjects(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("projects")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Explore listing: newest first, optionally filtered by domain.
		{
			Keys:    bson.D{{Key: "domain", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_projects_domain_created"),
		},
		// My-projects and by-user listings.
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_projects_owner_created"),
		},
		// Multikey: membership checks and my-projects $or arm.
		{
			Keys:    bson.D{{Key: "collaborators", Value: 1}},
			Options: options.Index().SetName("idx_projects_collaborators"),
		},
		// Multikey: skill-based recommendations.
		{
			Keys:    bson.D{{Key: "skillsRequired", Value: 1}},
			Options: options.Index().SetName("idx_projects_skills"),
		},
	})
}

func ensureCollaborationRequests(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("collaboration_requests")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Duplicate-pending checks on join and invite.
		{
			Keys: bson.D{
				{Key: "sender", Value: 1},
				{Key: "project", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().SetName("idx_requests_sender_project_status"),
		},
		{
			Keys: bson.D{
				{Key: "receiver", Value: 1},
				{Key: "project", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().SetName("idx_requests_receiver_project_status"),
		},
	})
}

func ensureNotifications(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("notifications")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Inbox listing: per recipient, newest first.
		{
			Keys:    bson.D{{Key: "recipient", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_notifications_recipient_created"),
		},
	})
}
