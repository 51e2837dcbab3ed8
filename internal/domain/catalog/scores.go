package catalog

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

func round(x float64) int {
	return int(math.Round(x))
}

func min100(x float64) float64 {
	return math.Min(100, x)
}

// ratio returns num/den*100 rounded, or 0 when the denominator is zero.
func ratio(num, den float64) int {
	if den <= 0 {
		return 0
	}
	return round(num / den * 100)
}

func campaignScores(doc bson.M) bson.M {
	milestones := ArrAt(doc, "timeline.milestones")
	completed := 0
	for _, m := range milestones {
		if el, ok := asMap(m); ok && el["status"] == "completed" {
			completed++
		}
	}
	progress := 0
	if len(milestones) > 0 {
		progress = round(float64(completed) / float64(len(milestones)) * 100)
	}

	reach := min100(NumAt(doc, "metrics.reach.socialMedia.followers") / 1000 * 10)
	engagement := min100(NumAt(doc, "metrics.engagement.petitionSignatures") / 100 * 10)
	outcome := NumAt(doc, "metrics.outcomes.policyChanges") * 20

	return bson.M{
		"progress":           progress,
		"effectivenessScore": round(reach*0.3 + engagement*0.3 + outcome*0.4),
	}
}

func outreachScores(doc bson.M) bson.M {
	reachRate := ratio(
		NumAt(doc, "targetCommunity.size.actualReach"),
		NumAt(doc, "targetCommunity.size.targetReach"),
	)
	engagement := NumAt(doc, "engagement.feedback.response")
	impact := NumAt(doc, "impact.quantitative.awarenessIncrease")
	sustainability := NumAt(doc, "sustainability.communityCapacity.localLeaders") * 10

	return bson.M{
		"reachRate":          reachRate,
		"effectivenessScore": round(float64(reachRate)*0.3 + engagement*0.3 + impact*0.2 + sustainability*0.2),
	}
}

func learningScores(doc bson.M) bson.M {
	performance := NumAt(doc, "performance.completionRate")
	engagement := min100(NumAt(doc, "analytics.engagement.timeSpent") / 100 * 10)
	technical := NumAt(doc, "performance.uptime")

	satisfaction := 0
	var totalCount, weightedSum float64
	for _, r := range ArrAt(doc, "analytics.engagement.ratings") {
		el, ok := asMap(r)
		if !ok {
			continue
		}
		count := Num(el["count"])
		totalCount += count
		weightedSum += Num(el["rating"]) * count
	}
	if totalCount > 0 {
		satisfaction = round(weightedSum / totalCount * 20)
	}

	return bson.M{
		"healthScore":       round(performance*0.4 + engagement*0.3 + technical*0.3),
		"satisfactionScore": satisfaction,
	}
}

func hubScores(doc bson.M) bson.M {
	utilization := ratio(
		NumAt(doc, "capacity.currentEnrollment"),
		NumAt(doc, "capacity.maxStudents"),
	)
	attendance := NumAt(doc, "performance.attendance.averageDaily")
	progress := NumAt(doc, "performance.studentProgress.averageImprovement")
	satisfaction := NumAt(doc, "performance.outcomes.parentSatisfaction")

	return bson.M{
		"utilizationRate":  utilization,
		"performanceScore": round(attendance*0.3 + progress*0.4 + satisfaction*0.3),
	}
}

func deviceScores(doc bson.M) bson.M {
	battery := NumAt(doc, "batteryLevel")
	efficiency := NumAt(doc, "solarPanelEfficiency")

	usage := 0.0
	if sessions := NumAt(doc, "usage.totalSessions"); sessions > 0 {
		usage = min100(sessions)
	}

	// A device with unresolved issues scores half on the maintenance axis.
	maintenance := 100.0
	for _, i := range ArrAt(doc, "maintenance.issues") {
		if el, ok := asMap(i); ok && el["status"] != "resolved" {
			maintenance = 50
			break
		}
	}

	return bson.M{
		"healthScore": round(battery*0.3 + efficiency*0.3 + usage*0.2 + maintenance*0.2),
	}
}

func trainingScores(doc bson.M) bson.M {
	enrollmentRate := ratio(
		NumAt(doc, "enrollment.currentEnrollment"),
		NumAt(doc, "enrollment.maxParticipants"),
	)
	completion := NumAt(doc, "outcomes.completion.completionRate")
	assessment := NumAt(doc, "outcomes.assessment.averageScore")
	feedback := NumAt(doc, "outcomes.feedback.averageRating") * 20
	impact := NumAt(doc, "outcomes.impact.knowledgeRetention")

	return bson.M{
		"enrollmentRate":     enrollmentRate,
		"effectivenessScore": round(completion*0.3 + assessment*0.3 + feedback*0.2 + impact*0.2),
	}
}
