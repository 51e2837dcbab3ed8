package records

import (
	"testing"

	"github.com/ngoworks/programhub/internal/domain/catalog"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnrollFilter_BindsOneElement(t *testing.T) {
	s := &Store{cat: &catalog.Hubs}

	filter := s.enrollFilter("HUB-001", "P1")
	if filter["hubId"] != "HUB-001" {
		t.Errorf("hubId: got %v", filter["hubId"])
	}

	// The program ID and status conditions must live inside a single
	// $elemMatch. As separate dot-path predicates a hub holding an
	// inactive P1 and an active P2 would match, and the positional
	// update would mutate whichever element matched first.
	programs, ok := filter["programs"].(bson.M)
	if !ok {
		t.Fatalf("programs predicate: got %T, want bson.M", filter["programs"])
	}
	elem, ok := programs["$elemMatch"].(bson.M)
	if !ok {
		t.Fatalf("programs predicate is not an $elemMatch: %v", programs)
	}
	if elem["id"] != "P1" {
		t.Errorf("$elemMatch id: got %v, want P1", elem["id"])
	}
	if elem["status"] != "active" {
		t.Errorf("$elemMatch status: got %v, want active", elem["status"])
	}

	for _, key := range []string{"programs.id", "programs.status"} {
		if _, ok := filter[key]; ok {
			t.Errorf("filter carries independent dot-path predicate %q", key)
		}
	}
}
