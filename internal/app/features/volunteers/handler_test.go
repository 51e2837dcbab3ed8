package volunteers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ngoworks/programhub/internal/app/features/volunteers"
	"github.com/ngoworks/programhub/internal/testutil"
	"go.uber.org/zap"
)

func TestSubmit_InvalidJSON(t *testing.T) {
	h := volunteers.NewHandler(nil, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Submit(rec, testutil.RawRequest("POST", "/api/volunteers", "{{"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	h := volunteers.NewHandler(nil, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Submit(rec, testutil.JSONRequest(t, "POST", "/api/volunteers", map[string]any{
		"email": "vol@example.org",
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	msgs := testutil.FieldMessages(t, testutil.DecodeEnvelope(t, rec))
	if msgs["name"] != "Name is required" {
		t.Errorf("name: got %q", msgs["name"])
	}
	if msgs["location"] != "Location is required" {
		t.Errorf("location: got %q", msgs["location"])
	}
	if _, ok := msgs["email"]; ok {
		t.Error("email was provided, should not be flagged")
	}
}
