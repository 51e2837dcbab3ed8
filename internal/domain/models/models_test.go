package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ngoworks/programhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccountSummary(t *testing.T) {
	acct := models.Account{
		ID:           primitive.NewObjectID(),
		Username:     "amina",
		UsernameCI:   "amina",
		Email:        "amina@example.org",
		EmailCI:      "amina@example.org",
		PasswordHash: "$2a$12$notarealhash",
		FullName:     "Amina Said",
		Role:         "coordinator",
	}

	sum := acct.Summary()
	if sum.ID != acct.ID.Hex() {
		t.Errorf("ID: got %q", sum.ID)
	}
	if sum.Username != "amina" || sum.FullName != "Amina Said" || sum.Role != "coordinator" {
		t.Errorf("summary: got %+v", sum)
	}
}

func TestAccountJSONHidesSecrets(t *testing.T) {
	acct := models.Account{
		Username:     "amina",
		UsernameCI:   "amina",
		EmailCI:      "amina@example.org",
		PasswordHash: "$2a$12$notarealhash",
	}

	buf, err := json.Marshal(acct)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(buf)
	if strings.Contains(out, "notarealhash") {
		t.Error("password hash leaked into JSON")
	}
	if strings.Contains(out, "username_ci") || strings.Contains(out, "_ci") {
		t.Error("folded fields leaked into JSON")
	}
}
