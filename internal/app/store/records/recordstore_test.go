package records

import (
	"testing"
	"time"

	"github.com/ngoworks/programhub/internal/domain/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRender(t *testing.T) {
	s := &Store{cat: &catalog.Devices}

	doc := bson.M{
		"_id":                  primitive.NewObjectID(),
		"deviceId":             "DEV-001",
		"batteryLevel":         float64(80),
		"solarPanelEfficiency": float64(90),
	}

	out := s.render(doc)
	if _, ok := out["_id"]; ok {
		t.Error("render kept _id")
	}
	// battery 80 and efficiency 90 with no usage or issues: 24+27+0+20
	if out["healthScore"] != 71 {
		t.Errorf("healthScore: got %v, want 71", out["healthScore"])
	}
}

func TestSanitizeFreeText(t *testing.T) {
	doc := bson.M{
		"description": "  <b>bold</b> claims  ",
		"content":     "plain",
		"title":       "<i>kept as-is</i>",
	}

	sanitizeFreeText(doc)
	if doc["description"] != "bold claims" {
		t.Errorf("description: got %q", doc["description"])
	}
	if doc["content"] != "plain" {
		t.Errorf("content: got %q", doc["content"])
	}
	// Only the free-text fields are sanitized.
	if doc["title"] != "<i>kept as-is</i>" {
		t.Errorf("title: got %q", doc["title"])
	}
}

func TestKeyFilter(t *testing.T) {
	s := &Store{cat: &catalog.Hubs}
	filter := s.keyFilter("HUB-001")
	if filter["hubId"] != "HUB-001" || len(filter) != 1 {
		t.Errorf("keyFilter: got %v", filter)
	}
}

func TestBucketDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 23, 50, 0, 0, time.UTC)

	if got := bucketDay(day); got != "2026-03-14" {
		t.Errorf("time.Time: got %q", got)
	}
	if got := bucketDay(primitive.NewDateTimeFromTime(day)); got != "2026-03-14" {
		t.Errorf("primitive.DateTime: got %q", got)
	}
	if got := bucketDay("2026-03-14"); got != "" {
		t.Errorf("string input: got %q, want empty", got)
	}
}
