// Package models holds the persisted document types shared by the
// stores and features. Program records themselves are schemaless
// documents shaped by the catalog, so only the fixed-shape collections
// have types here.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a registered user in the users collection. The *_ci fields
// hold case-folded copies used for case-insensitive uniqueness.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	UsernameCI   string             `bson:"username_ci" json:"-"`
	Email        string             `bson:"email" json:"email"`
	EmailCI      string             `bson:"email_ci" json:"-"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	FullName     string             `bson:"full_name" json:"fullName"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

// Summary is the account shape returned by the login endpoint.
type Summary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Summary returns the public view of the account.
func (a *Account) Summary() Summary {
	return Summary{
		ID:       a.ID.Hex(),
		Username: a.Username,
		FullName: a.FullName,
		Role:     a.Role,
	}
}

// Volunteer is one intake submission in the volunteers collection.
type Volunteer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location   string             `bson:"location" json:"location"`
	Interests  []string           `bson:"interests" json:"interests"`
	Experience string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Source     string             `bson:"source" json:"source"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
