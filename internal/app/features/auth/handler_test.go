package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ngoworks/programhub/internal/app/features/auth"
	"github.com/ngoworks/programhub/internal/app/system/token"
	"github.com/ngoworks/programhub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *auth.Handler {
	t.Helper()
	issuer, err := token.NewIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	// Validation paths never reach the store.
	return auth.NewHandler(nil, issuer, zap.NewNop())
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Register(rec, testutil.RawRequest("POST", "/api/register", "{not json"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := testutil.DecodeEnvelope(t, rec)
	if body["error"] != "invalid JSON body" {
		t.Errorf("error: got %v", body["error"])
	}
}

func TestRegister_MissingFields(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Register(rec, testutil.JSONRequest(t, "POST", "/api/register", map[string]any{
		"username": "  ",
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	msgs := testutil.FieldMessages(t, testutil.DecodeEnvelope(t, rec))
	want := map[string]string{
		"fullName": "Full name is required",
		"email":    "Email is required",
		"username": "Username is required",
		"password": "Password is required",
	}
	for field, msg := range want {
		if msgs[field] != msg {
			t.Errorf("field %q: got %q, want %q", field, msgs[field], msg)
		}
	}
}

func TestLogin_MissingFields(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Login(rec, testutil.JSONRequest(t, "POST", "/api/login", map[string]any{
		"username": "amina",
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	msgs := testutil.FieldMessages(t, testutil.DecodeEnvelope(t, rec))
	if msgs["password"] != "Password is required" {
		t.Errorf("password: got %q", msgs["password"])
	}
	if _, ok := msgs["username"]; ok {
		t.Error("username was provided, should not be flagged")
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Login(rec, testutil.RawRequest("POST", "/api/login", "[]nope"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
