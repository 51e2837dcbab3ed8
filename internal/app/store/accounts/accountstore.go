// Package accounts persists registered users and checks credentials.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/ngoworks/programhub/internal/app/system/apperr"
	"github.com/ngoworks/programhub/internal/app/system/normalize"
	"github.com/ngoworks/programhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Store persists accounts in the users collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Register creates a new account with a hashed password. Username and
// email are unique case-insensitively; a clash reports a conflict. The
// stored hash is never returned to callers in any response shape.
func (s *Store) Register(ctx context.Context, fullName, email, username, password string) (*models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct := &models.Account{
		Username:     username,
		UsernameCI:   text.Fold(username),
		Email:        email,
		EmailCI:      text.Fold(email),
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         normalize.Role(""),
		CreatedAt:    time.Now().UTC(),
	}

	res, err := s.c.InsertOne(ctx, acct)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, apperr.ErrConflict
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		acct.ID = oid
	}
	return acct, nil
}

// Login verifies a username/password pair. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *Store) Login(ctx context.Context, username, password string) (*models.Account, error) {
	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"username_ci": text.Fold(username)}).Decode(&acct)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, apperr.ErrUnauthorized
	}
	acct.Role = normalize.Role(acct.Role)
	return &acct, nil
}
