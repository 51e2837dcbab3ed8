package catalog

import "go.mongodb.org/mongo-driver/bson"

// at resolves a path for analytics assembly; absent paths become null in
// the response rather than being dropped.
func at(doc bson.M, path string) any {
	v, _ := Lookup(doc, path)
	return v
}

// lastN returns the trailing n elements of the array at path.
func lastN(doc bson.M, path string, n int) []any {
	arr := ArrAt(doc, path)
	if arr == nil {
		return []any{}
	}
	if len(arr) > n {
		arr = arr[len(arr)-n:]
	}
	return arr
}

func campaignAnalytics(doc bson.M) bson.M {
	scores := campaignScores(doc)
	return bson.M{
		"campaignId":         at(doc, "campaignId"),
		"title":              at(doc, "title"),
		"status":             at(doc, "status"),
		"progress":           scores["progress"],
		"effectivenessScore": scores["effectivenessScore"],
		"timeline":           at(doc, "timeline"),
		"objectives":         at(doc, "objectives"),
		"strategies":         at(doc, "strategies"),
		"metrics":            at(doc, "metrics"),
		"partnerships":       at(doc, "partnerships"),
		"impact":             at(doc, "impact"),
		"recentReports":      lastN(doc, "reports", 5),
	}
}

func outreachAnalytics(doc bson.M) bson.M {
	scores := outreachScores(doc)
	return bson.M{
		"programId":          at(doc, "programId"),
		"name":               at(doc, "name"),
		"status":             at(doc, "status"),
		"reachRate":          scores["reachRate"],
		"effectivenessScore": scores["effectivenessScore"],
		"targetCommunity":    at(doc, "targetCommunity"),
		"activities":         at(doc, "activities"),
		"team":               at(doc, "team"),
		"impact":             at(doc, "impact"),
		"timeline":           at(doc, "timeline"),
		"sustainability":     at(doc, "sustainability"),
		"recentReports":      lastN(doc, "evaluation.reports", 5),
	}
}

func learningAnalytics(doc bson.M) bson.M {
	scores := learningScores(doc)
	return bson.M{
		"programId":         at(doc, "programId"),
		"name":              at(doc, "name"),
		"status":            at(doc, "status"),
		"healthScore":       scores["healthScore"],
		"satisfactionScore": scores["satisfactionScore"],
		"enrollment":        at(doc, "enrollment"),
		"performance":       at(doc, "performance"),
		"analytics":         at(doc, "analytics"),
		"deployment":        at(doc, "deployment"),
		"impact":            at(doc, "impact"),
		"recentReports":     lastN(doc, "reports", 5),
	}
}

func hubAnalytics(doc bson.M) bson.M {
	scores := hubScores(doc)
	return bson.M{
		"hubId":            at(doc, "hubId"),
		"location":         at(doc, "location"),
		"status":           at(doc, "status"),
		"utilizationRate":  scores["utilizationRate"],
		"performanceScore": scores["performanceScore"],
		"capacity":         at(doc, "capacity"),
		"programs":         at(doc, "programs"),
		"staff":            at(doc, "staff"),
		"resources":        at(doc, "resources"),
		"performance":      at(doc, "performance"),
		"funding":          at(doc, "funding"),
		"community":        at(doc, "community"),
		"recentReports":    lastN(doc, "reports", 5),
	}
}

func deviceAnalytics(doc bson.M) bson.M {
	openIssues := 0
	for _, i := range ArrAt(doc, "maintenance.issues") {
		if el, ok := asMap(i); ok && el["status"] == "open" {
			openIssues++
		}
	}
	scores := deviceScores(doc)
	return bson.M{
		"deviceId":               at(doc, "deviceId"),
		"location":               at(doc, "location"),
		"status":                 at(doc, "status"),
		"healthScore":            scores["healthScore"],
		"batteryLevel":           at(doc, "batteryLevel"),
		"solarPanelEfficiency":   at(doc, "solarPanelEfficiency"),
		"totalBooks":             at(doc, "content.totalBooks"),
		"totalSessions":          at(doc, "usage.totalSessions"),
		"totalReadingTime":       at(doc, "usage.totalReadingTime"),
		"uniqueUsers":            at(doc, "usage.uniqueUsers"),
		"lastActivity":           at(doc, "usage.lastActivity"),
		"averageSessionDuration": at(doc, "performance.averageSessionDuration"),
		"mostPopularBooks":       at(doc, "performance.mostPopularBooks"),
		"openIssues":             openIssues,
		"recentUsage":            lastN(doc, "usage.dailyUsage", 7),
	}
}

func trainingAnalytics(doc bson.M) bson.M {
	scores := trainingScores(doc)
	return bson.M{
		"programId":          at(doc, "programId"),
		"title":              at(doc, "title"),
		"status":             at(doc, "status"),
		"enrollmentRate":     scores["enrollmentRate"],
		"effectivenessScore": scores["effectivenessScore"],
		"enrollment":         at(doc, "enrollment"),
		"outcomes":           at(doc, "outcomes"),
		"schedule":           at(doc, "schedule"),
		"instructors":        at(doc, "instructors"),
		"recentReports":      lastN(doc, "reports", 5),
	}
}
