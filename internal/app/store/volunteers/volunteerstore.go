// Package volunteers persists volunteer intake submissions.
package volunteers

import (
	"context"
	"fmt"
	"time"

	"github.com/ngoworks/programhub/internal/app/system/normalize"
	"github.com/ngoworks/programhub/internal/app/system/sanitize"
	"github.com/ngoworks/programhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxRecent caps the page size of the recent-submissions listing.
const MaxRecent = 50

// DefaultRecent is the listing size when the client does not supply one.
const DefaultRecent = 10

// Store persists volunteer submissions.
type Store struct {
	c             *mongo.Collection
	defaultSource string
}

// New binds the store; defaultSource labels submissions that do not
// carry their own source tag.
func New(db *mongo.Database, defaultSource string) *Store {
	return &Store{c: db.Collection("volunteers"), defaultSource: defaultSource}
}

// Submission is the intake payload accepted from the public form.
type Submission struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Interests  any    `json:"interests"`
	Experience string `json:"experience"`
	Source     string `json:"source"`
}

// Submit stores one intake submission. Interests are normalized from an
// array or comma-separated string; free text is stripped of HTML.
func (s *Store) Submit(ctx context.Context, sub Submission) (*models.Volunteer, error) {
	source := sub.Source
	if source == "" {
		source = s.defaultSource
	}

	v := &models.Volunteer{
		Name:       sanitize.Text(sub.Name),
		Email:      sub.Email,
		Phone:      sub.Phone,
		Location:   sanitize.Text(sub.Location),
		Interests:  normalize.Interests(sub.Interests),
		Experience: sanitize.Text(sub.Experience),
		Source:     source,
		CreatedAt:  time.Now().UTC(),
	}

	res, err := s.c.InsertOne(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("insert volunteer: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		v.ID = oid
	}
	return v, nil
}

// ListRecent returns the newest submissions, up to limit. Limit falls
// back to DefaultRecent and is clamped to MaxRecent. A stored interests
// value that does not decode as a string list comes back empty rather
// than failing the listing.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]models.Volunteer, error) {
	if limit <= 0 {
		limit = DefaultRecent
	}
	if limit > MaxRecent {
		limit = MaxRecent
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Volunteer{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode volunteer: %w", err)
		}
		out = append(out, decodeVolunteer(raw))
	}
	return out, cur.Err()
}

// decodeVolunteer tolerates malformed stored documents: a bad interests
// value decodes to an empty list instead of poisoning the listing.
func decodeVolunteer(raw bson.M) models.Volunteer {
	v := models.Volunteer{
		Name:       str(raw["name"]),
		Email:      str(raw["email"]),
		Phone:      str(raw["phone"]),
		Location:   str(raw["location"]),
		Experience: str(raw["experience"]),
		Source:     str(raw["source"]),
		Interests:  []string{},
	}
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		v.ID = oid
	}
	switch t := raw["created_at"].(type) {
	case primitive.DateTime:
		v.CreatedAt = t.Time().UTC()
	case time.Time:
		v.CreatedAt = t.UTC()
	}
	if arr, ok := raw["interests"].(primitive.A); ok {
		for _, item := range arr {
			if s, ok := item.(string); ok {
				v.Interests = append(v.Interests, s)
			}
		}
	}
	return v
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
