package catalog

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestRatio(t *testing.T) {
	if got := ratio(1, 0); got != 0 {
		t.Errorf("ratio with zero denominator: got %d, want 0", got)
	}
	if got := ratio(1, 3); got != 33 {
		t.Errorf("ratio(1,3): got %d, want 33", got)
	}
	if got := ratio(2, 3); got != 67 {
		t.Errorf("ratio(2,3): got %d, want 67", got)
	}
}

func TestCampaignScores(t *testing.T) {
	doc := bson.M{
		"timeline": bson.M{
			"milestones": []any{
				bson.M{"status": "completed"},
				bson.M{"status": "pending"},
			},
		},
		"metrics": bson.M{
			"reach":      bson.M{"socialMedia": bson.M{"followers": float64(5000)}},
			"engagement": bson.M{"petitionSignatures": float64(200)},
			"outcomes":   bson.M{"policyChanges": float64(2)},
		},
	}

	got := campaignScores(doc)
	if got["progress"] != 50 {
		t.Errorf("progress: got %v, want 50", got["progress"])
	}
	if got["effectivenessScore"] != 37 {
		t.Errorf("effectivenessScore: got %v, want 37", got["effectivenessScore"])
	}
}

func TestCampaignScores_EmptyDoc(t *testing.T) {
	got := campaignScores(bson.M{})
	if got["progress"] != 0 {
		t.Errorf("progress: got %v, want 0", got["progress"])
	}
	if got["effectivenessScore"] != 0 {
		t.Errorf("effectivenessScore: got %v, want 0", got["effectivenessScore"])
	}
}

func TestCampaignScores_ReachIsCapped(t *testing.T) {
	doc := bson.M{
		"metrics": bson.M{
			"reach": bson.M{"socialMedia": bson.M{"followers": float64(1000000)}},
		},
	}
	// reach axis caps at 100: 100*0.3 = 30
	if got := campaignScores(doc)["effectivenessScore"]; got != 30 {
		t.Errorf("effectivenessScore: got %v, want 30", got)
	}
}

func TestOutreachScores(t *testing.T) {
	doc := bson.M{
		"targetCommunity": bson.M{
			"size": bson.M{"actualReach": float64(500), "targetReach": float64(1000)},
		},
		"engagement":     bson.M{"feedback": bson.M{"response": float64(80)}},
		"impact":         bson.M{"quantitative": bson.M{"awarenessIncrease": float64(40)}},
		"sustainability": bson.M{"communityCapacity": bson.M{"localLeaders": float64(5)}},
	}

	got := outreachScores(doc)
	if got["reachRate"] != 50 {
		t.Errorf("reachRate: got %v, want 50", got["reachRate"])
	}
	if got["effectivenessScore"] != 57 {
		t.Errorf("effectivenessScore: got %v, want 57", got["effectivenessScore"])
	}
}

func TestLearningScores(t *testing.T) {
	doc := bson.M{
		"performance": bson.M{"completionRate": float64(80), "uptime": float64(90)},
		"analytics": bson.M{
			"engagement": bson.M{
				"timeSpent": float64(2000),
				"ratings": []any{
					bson.M{"rating": float64(5), "count": float64(10)},
					bson.M{"rating": float64(4), "count": float64(10)},
				},
			},
		},
	}

	got := learningScores(doc)
	if got["healthScore"] != 89 {
		t.Errorf("healthScore: got %v, want 89", got["healthScore"])
	}
	if got["satisfactionScore"] != 90 {
		t.Errorf("satisfactionScore: got %v, want 90", got["satisfactionScore"])
	}
}

func TestLearningScores_NoRatings(t *testing.T) {
	got := learningScores(bson.M{})
	if got["satisfactionScore"] != 0 {
		t.Errorf("satisfactionScore: got %v, want 0", got["satisfactionScore"])
	}
}

func TestHubScores(t *testing.T) {
	doc := bson.M{
		"capacity": bson.M{"currentEnrollment": float64(30), "maxStudents": float64(60)},
		"performance": bson.M{
			"attendance":      bson.M{"averageDaily": float64(80)},
			"studentProgress": bson.M{"averageImprovement": float64(60)},
			"outcomes":        bson.M{"parentSatisfaction": float64(90)},
		},
	}

	got := hubScores(doc)
	if got["utilizationRate"] != 50 {
		t.Errorf("utilizationRate: got %v, want 50", got["utilizationRate"])
	}
	if got["performanceScore"] != 75 {
		t.Errorf("performanceScore: got %v, want 75", got["performanceScore"])
	}
}

func TestDeviceScores(t *testing.T) {
	doc := bson.M{
		"batteryLevel":         float64(80),
		"solarPanelEfficiency": float64(90),
		"usage":                bson.M{"totalSessions": float64(150)},
	}

	if got := deviceScores(doc)["healthScore"]; got != 91 {
		t.Errorf("healthScore: got %v, want 91", got)
	}

	doc["maintenance"] = bson.M{"issues": []any{bson.M{"status": "open"}}}
	if got := deviceScores(doc)["healthScore"]; got != 81 {
		t.Errorf("healthScore with open issue: got %v, want 81", got)
	}

	doc["maintenance"] = bson.M{"issues": []any{bson.M{"status": "resolved"}}}
	if got := deviceScores(doc)["healthScore"]; got != 91 {
		t.Errorf("healthScore with resolved issue: got %v, want 91", got)
	}
}

func TestDeviceScores_NoUsage(t *testing.T) {
	// Unused device still gets full maintenance credit: 100*0.2 = 20.
	if got := deviceScores(bson.M{})["healthScore"]; got != 20 {
		t.Errorf("healthScore: got %v, want 20", got)
	}
}

func TestTrainingScores(t *testing.T) {
	doc := bson.M{
		"enrollment": bson.M{"currentEnrollment": float64(20), "maxParticipants": float64(40)},
		"outcomes": bson.M{
			"completion": bson.M{"completionRate": float64(80)},
			"assessment": bson.M{"averageScore": float64(70)},
			"feedback":   bson.M{"averageRating": float64(4)},
			"impact":     bson.M{"knowledgeRetention": float64(60)},
		},
	}

	got := trainingScores(doc)
	if got["enrollmentRate"] != 50 {
		t.Errorf("enrollmentRate: got %v, want 50", got["enrollmentRate"])
	}
	if got["effectivenessScore"] != 73 {
		t.Errorf("effectivenessScore: got %v, want 73", got["effectivenessScore"])
	}
}
