package volunteers

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDecodeVolunteer(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	v := decodeVolunteer(bson.M{
		"_id":        oid,
		"name":       "Rukia",
		"email":      "rukia@example.org",
		"location":   "Mombasa",
		"interests":  primitive.A{"reading", "mentoring"},
		"source":     "website",
		"created_at": primitive.NewDateTimeFromTime(created),
	})

	if v.ID != oid {
		t.Errorf("ID: got %v", v.ID)
	}
	if v.Name != "Rukia" || v.Location != "Mombasa" {
		t.Errorf("fields: got %+v", v)
	}
	if len(v.Interests) != 2 || v.Interests[0] != "reading" {
		t.Errorf("interests: got %v", v.Interests)
	}
	if !v.CreatedAt.Equal(created) {
		t.Errorf("createdAt: got %v, want %v", v.CreatedAt, created)
	}
}

func TestDecodeVolunteer_MalformedInterests(t *testing.T) {
	cases := []struct {
		name string
		raw  any
	}{
		{"string instead of array", "reading,mentoring"},
		{"number", int32(7)},
		{"nil", nil},
		{"mixed array keeps strings", primitive.A{"ok", int32(1), bson.M{"x": 1}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := decodeVolunteer(bson.M{"name": "X", "interests": c.raw})
			if v.Interests == nil {
				t.Fatal("interests must never be nil")
			}
			for _, i := range v.Interests {
				if i != "ok" {
					t.Errorf("unexpected interest %q", i)
				}
			}
		})
	}
}
