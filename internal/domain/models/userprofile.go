// internal/domain/models/userprofile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxBioLength is the longest bio a profile may carry.
const MaxBioLength = 300

// UserProfile is the one-to-one profile document for a User.
// Skills are stored trimmed and lowercase so intersection queries
// never have to fold case at read time.
type UserProfile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user" json:"user"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills       []string           `bson:"skills" json:"skills"`
	Achievements []string           `bson:"achievements" json:"achievements"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
