package health_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ngoworks/programhub/internal/app/features/health"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestServe_DatabaseUnreachable(t *testing.T) {
	// A lazily connected client with nothing listening: the ping fails
	// within the health-check timeout.
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://127.0.0.1:1").SetServerSelectionTimeout(500*time.Millisecond))
	if err != nil {
		t.Fatalf("mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	r := chi.NewRouter()
	health.MountRoutes(r, health.NewHandler(client, zap.NewNop()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if body["status"] != "error" {
		t.Errorf("status field: got %v", body["status"])
	}
	if body["database"] != "disconnected" {
		t.Errorf("database field: got %v", body["database"])
	}
	if body["message"] != "Database unavailable" {
		t.Errorf("message field: got %v", body["message"])
	}
}
