package programs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ngoworks/programhub/internal/app/features/programs"
	"github.com/ngoworks/programhub/internal/app/store/records"
	"github.com/ngoworks/programhub/internal/domain/catalog"
	"github.com/ngoworks/programhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// testRouter mounts every category the way the bootstrap does. The
// Mongo client connects lazily, so building stores and routes performs
// no I/O.
func testRouter(t *testing.T) chi.Router {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	if err != nil {
		t.Fatalf("mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("programhub_test")
	r := chi.NewRouter()
	for _, cat := range catalog.All() {
		h := programs.NewHandler(records.New(db, cat), zap.NewNop())
		r.Route(cat.Mount, func(r chi.Router) {
			programs.MountRoutes(r, h)
		})
	}
	return r
}

func match(r chi.Router, method, path string) bool {
	mux, ok := r.(*chi.Mux)
	if !ok {
		return false
	}
	return mux.Match(chi.NewRouteContext(), method, path)
}

func TestMountRoutes_Surface(t *testing.T) {
	r := testRouter(t)

	cases := []struct {
		method string
		path   string
		want   bool
	}{
		{"POST", "/api/campaigns", true},
		{"GET", "/api/campaigns", true},
		{"GET", "/api/campaigns/stats/global", true},
		{"GET", "/api/campaigns/CAMP-001", true},
		{"PUT", "/api/campaigns/CAMP-001", true},
		{"DELETE", "/api/campaigns/CAMP-001", true},
		{"GET", "/api/campaigns/CAMP-001/analytics", true},
		{"POST", "/api/campaigns/CAMP-001/milestones", true},
		{"PUT", "/api/campaigns/CAMP-001/milestones/m1", true},
		{"POST", "/api/campaigns/CAMP-001/reports", true},
		{"PUT", "/api/campaigns/CAMP-001/reports/r1", false},
		{"POST", "/api/campaigns/CAMP-001/metrics", true},

		{"POST", "/api/outreach/OUT-001/activities", true},
		{"POST", "/api/outreach/OUT-001/evaluation", true},
		{"POST", "/api/outreach/OUT-001/impact", true},

		{"POST", "/api/learning/LRN-001/feedback", true},
		{"POST", "/api/learning/LRN-001/issues", true},
		{"POST", "/api/learning/LRN-001/analytics", true},
		{"GET", "/api/learning/LRN-001/analytics", true},

		{"POST", "/api/hubs/HUB-001/enroll", true},
		{"POST", "/api/hubs/HUB-001/progress", true},
		{"POST", "/api/hubs/HUB-001/reports", true},

		{"POST", "/api/devices/DEV-001/usage", true},
		{"POST", "/api/devices/DEV-001/maintenance", true},

		// Teachers enroll through the dedicated operation, never a
		// generic append.
		{"POST", "/api/training/TRN-001/enroll", true},
		{"POST", "/api/training/TRN-001/teachers", false},
		{"PUT", "/api/training/TRN-001/teachers/t1", true},
		{"GET", "/api/training/stats/global", true},
	}

	for _, c := range cases {
		if got := match(r, c.method, c.path); got != c.want {
			t.Errorf("%s %s: got %v, want %v", c.method, c.path, got, c.want)
		}
	}
}

func TestCreate_InvalidJSON(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.RawRequest("POST", "/api/campaigns", "{broken"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := testutil.DecodeEnvelope(t, rec)
	if body["error"] != "invalid JSON body" {
		t.Errorf("error: got %v", body["error"])
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.JSONRequest(t, "POST", "/api/campaigns", map[string]any{
		"title": "No key, no category",
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	msgs := testutil.FieldMessages(t, testutil.DecodeEnvelope(t, rec))
	if msgs["campaignId"] != "Campaign ID is required" {
		t.Errorf("campaignId: got %q", msgs["campaignId"])
	}
	if msgs["category"] != "Invalid category" {
		t.Errorf("category: got %q", msgs["category"])
	}
	if _, ok := msgs["title"]; ok {
		t.Error("title was provided, should not be flagged")
	}
}

func TestUpdate_RejectsBadEnum(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.JSONRequest(t, "PUT", "/api/campaigns/CAMP-001", map[string]any{
		"priority": "urgent",
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	msgs := testutil.FieldMessages(t, testutil.DecodeEnvelope(t, rec))
	if msgs["priority"] != "Invalid priority" {
		t.Errorf("priority: got %q", msgs["priority"])
	}
}

func TestAppendChild_ValidationErrors(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.JSONRequest(t, "POST", "/api/campaigns/CAMP-001/milestones", map[string]any{
		"date": "2026-05-01",
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	msgs := testutil.FieldMessages(t, testutil.DecodeEnvelope(t, rec))
	if msgs["name"] != "Milestone name is required" {
		t.Errorf("name: got %q", msgs["name"])
	}
	if msgs["description"] != "Description is required" {
		t.Errorf("description: got %q", msgs["description"])
	}
	if _, ok := msgs["date"]; ok {
		t.Error("date was provided, should not be flagged")
	}
}

func TestEnrollStudent_ValidationErrors(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.JSONRequest(t, "POST", "/api/hubs/HUB-001/enroll", map[string]any{}))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUpdate_InvalidJSON(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.RawRequest("PUT", "/api/hubs/HUB-001", "not even close"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
