package catalog

var priorityEnum = Enum{
	Path:    "priority",
	Values:  []string{"low", "medium", "high", "critical"},
	Default: "medium",
	Message: "Invalid priority",
}

// Campaigns is the advocacy-campaign category.
var Campaigns = Category{
	Name:       "campaigns",
	Mount:      "/api/campaigns",
	Noun:       "Campaign",
	Collection: "advocacy_campaigns",
	KeyField:   "campaignId",
	KeyMessage: "Campaign ID is required",
	Required: []Required{
		{Path: "title", Kind: String, Message: "Title is required"},
		{Path: "description", Kind: String, Message: "Description is required"},
		{Path: "category", Kind: String, Message: "Invalid category"},
		{Path: "target.region", Kind: String, Message: "Target region is required"},
		{Path: "target.country", Kind: String, Message: "Target country is required"},
		{Path: "timeline.startDate", Kind: ISODate, Message: "Start date must be valid"},
	},
	Enums: []Enum{
		{Path: "category", Values: []string{"policy", "awareness", "funding", "education", "community", "international"}, Message: "Invalid category"},
		{Path: "status", Values: []string{"planning", "active", "paused", "completed", "cancelled"}, Default: "planning", Message: "Invalid status"},
		priorityEnum,
	},
	Filters: map[string]string{
		"status":   "status",
		"category": "category",
		"country":  "target.country",
		"priority": "priority",
	},
	SortField: "timeline.startDate",
	ListOmit:  []string{"reports"},
	Children: []Child{
		{
			Kind:       "milestones",
			Noun:       "Milestone",
			AddedMsg:   "Milestone added successfully",
			UpdatedMsg: "Milestone updated successfully",
			ArrayPath:  "timeline.milestones",
			Required: []Required{
				{Path: "name", Kind: String, Message: "Milestone name is required"},
				{Path: "date", Kind: ISODate, Message: "Date must be valid"},
				{Path: "description", Kind: String, Message: "Description is required"},
			},
			Enums:      []Enum{{Path: "status", Values: []string{"pending", "in-progress", "completed", "overdue"}, Message: "Invalid status"}},
			Defaults:   map[string]any{"status": "pending"},
			IDField:    "id",
			GenerateID: true,
			Updatable:  true,
		},
		{
			Kind:      "reports",
			Noun:      "Report",
			AddedMsg:  "Report added successfully",
			ArrayPath: "reports",
			Required: []Required{
				{Path: "type", Kind: String, Message: "Invalid report type"},
				{Path: "title", Kind: String, Message: "Report title is required"},
				{Path: "content", Kind: String, Message: "Report content is required"},
				{Path: "author", Kind: String, Message: "Author is required"},
			},
			Enums:      []Enum{{Path: "type", Values: []string{"progress", "milestone", "final", "evaluation"}, Message: "Invalid report type"}},
			Stamp:      "date",
			IDField:    "id",
			GenerateID: true,
		},
	},
	MergeOps:  map[string]MergeOp{"metrics": {Section: "metrics", Message: "Metrics updated successfully"}},
	Scores:    campaignScores,
	Analytics: campaignAnalytics,
	Stats: StatsSpec{
		TotalKey: "totalCampaigns",
		StatusCounts: map[string]string{
			"activeCampaigns":    "active",
			"completedCampaigns": "completed",
		},
		Sums: map[string]string{
			"totalReach":      "metrics.reach.socialMedia.followers",
			"totalEngagement": "metrics.engagement.petitionSignatures",
			"totalOutcomes":   "metrics.outcomes.policyChanges",
		},
		Breakdowns: []Breakdown{
			{Name: "categories", GroupBy: "category", CountKey: "count"},
			{
				Name:     "topCountries",
				GroupBy:  "target.country",
				CountKey: "campaignCount",
				Sums:     map[string]string{"totalReach": "metrics.reach.socialMedia.followers"},
				Limit:    10,
			},
		},
	},
}

// Outreach is the community-outreach category.
var Outreach = Category{
	Name:       "outreach",
	Mount:      "/api/outreach",
	Noun:       "Program",
	Collection: "outreach_programs",
	KeyField:   "programId",
	KeyMessage: "Program ID is required",
	Required: []Required{
		{Path: "name", Kind: String, Message: "Program name is required"},
		{Path: "description", Kind: String, Message: "Description is required"},
		{Path: "type", Kind: String, Message: "Invalid program type"},
		{Path: "targetCommunity.location.region", Kind: String, Message: "Target region is required"},
		{Path: "targetCommunity.location.country", Kind: String, Message: "Target country is required"},
		{Path: "timeline.startDate", Kind: ISODate, Message: "Start date must be valid"},
	},
	Enums: []Enum{
		{Path: "type", Values: []string{"awareness", "engagement", "support", "volunteer", "partnership", "advocacy"}, Message: "Invalid program type"},
		{Path: "status", Values: []string{"planning", "active", "completed", "paused", "cancelled"}, Default: "planning", Message: "Invalid status"},
		priorityEnum,
	},
	Filters: map[string]string{
		"status":  "status",
		"type":    "type",
		"country": "targetCommunity.location.country",
		"region":  "targetCommunity.location.region",
	},
	SortField: "timeline.startDate",
	ListOmit:  []string{"evaluation.reports"},
	Children: []Child{
		{
			Kind:      "activities",
			Noun:      "Activity",
			AddedMsg:  "Activity added successfully",
			ArrayPath: "activities",
			Required: []Required{
				{Path: "name", Kind: String, Message: "Activity name is required"},
				{Path: "type", Kind: String, Message: "Invalid activity type"},
				{Path: "description", Kind: String, Message: "Description is required"},
				{Path: "schedule.startDate", Kind: ISODate, Message: "Start date must be valid"},
			},
			Enums:      []Enum{{Path: "type", Values: []string{"workshop", "seminar", "campaign", "event", "meeting", "training", "support-group"}, Message: "Invalid activity type"}},
			IDField:    "id",
			GenerateID: true,
		},
		{
			Kind:      "evaluation",
			Noun:      "Report",
			AddedMsg:  "Evaluation report added successfully",
			ArrayPath: "evaluation.reports",
			Required: []Required{
				{Path: "type", Kind: String, Message: "Report type is required"},
				{Path: "title", Kind: String, Message: "Report title is required"},
				{Path: "content", Kind: String, Message: "Report content is required"},
				{Path: "author", Kind: String, Message: "Author is required"},
			},
			Stamp:      "date",
			IDField:    "id",
			GenerateID: true,
		},
	},
	MergeOps:  map[string]MergeOp{"impact": {Section: "impact", Message: "Impact metrics updated successfully"}},
	Scores:    outreachScores,
	Analytics: outreachAnalytics,
	Stats: StatsSpec{
		TotalKey:     "totalPrograms",
		StatusCounts: map[string]string{"activePrograms": "active"},
		Sums: map[string]string{
			"totalReach":      "targetCommunity.size.actualReach",
			"totalTarget":     "targetCommunity.size.targetReach",
			"totalVolunteers": "team.volunteers.total",
		},
		SizeSums: map[string]string{"totalActivities": "activities"},
		Breakdowns: []Breakdown{
			{
				Name:     "programTypes",
				GroupBy:  "type",
				CountKey: "count",
				Sums:     map[string]string{"totalReach": "targetCommunity.size.actualReach"},
			},
			{
				Name:     "topCountries",
				GroupBy:  "targetCommunity.location.country",
				CountKey: "programCount",
				Sums:     map[string]string{"totalReach": "targetCommunity.size.actualReach"},
				SizeSums: map[string]string{"totalActivities": "activities"},
				Limit:    10,
			},
			{
				Name:     "activityTypes",
				Unwind:   "activities",
				GroupBy:  "activities.type",
				CountKey: "count",
				Avgs:     map[string]string{"averageParticipants": "activities.participants.actual"},
			},
		},
	},
}

// Learning is the digital-learning category.
var Learning = Category{
	Name:       "learning",
	Mount:      "/api/learning",
	Noun:       "Program",
	Collection: "learning_programs",
	KeyField:   "programId",
	KeyMessage: "Program ID is required",
	Required: []Required{
		{Path: "name", Kind: String, Message: "Program name is required"},
		{Path: "description", Kind: String, Message: "Description is required"},
		{Path: "type", Kind: String, Message: "Invalid program type"},
		{Path: "targetAudience.primary", Kind: Array, Message: "Target audience must be an array"},
	},
	Enums: []Enum{
		{Path: "type", Values: []string{"online-course", "mobile-app", "platform", "tool", "resource-library"}, Message: "Invalid program type"},
		{Path: "status", Values: []string{"development", "testing", "launched", "maintenance", "archived"}, Default: "development", Message: "Invalid status"},
	},
	Filters: map[string]string{
		"status":  "status",
		"type":    "type",
		"country": "deployment.countries",
	},
	SortField: "deployment.launchDate",
	ListOmit:  []string{"reports"},
	Children: []Child{
		{
			Kind:      "feedback",
			Noun:      "Feedback",
			AddedMsg:  "Feedback added successfully",
			ArrayPath: "feedback",
			Required: []Required{
				{Path: "userId", Kind: String, Message: "User ID is required"},
				{Path: "rating", Kind: Number, Min: 1, Max: 5, Message: "Rating must be between 1 and 5"},
				{Path: "comment", Kind: String, Message: "Comment is required"},
				{Path: "category", Kind: String, Message: "Category is required"},
			},
			Stamp:      "date",
			IDField:    "id",
			GenerateID: true,
		},
		{
			Kind:      "issues",
			Noun:      "Issue",
			AddedMsg:  "Issue reported successfully",
			ArrayPath: "issues",
			Required: []Required{
				{Path: "type", Kind: String, Message: "Invalid issue type"},
				{Path: "severity", Kind: String, Message: "Invalid severity"},
				{Path: "description", Kind: String, Message: "Description is required"},
				{Path: "reportedBy", Kind: String, Message: "Reporter is required"},
			},
			Enums: []Enum{
				{Path: "type", Values: []string{"bug", "feature-request", "usability", "performance", "content"}, Message: "Invalid issue type"},
				{Path: "severity", Values: []string{"low", "medium", "high", "critical"}, Message: "Invalid severity"},
				{Path: "status", Values: []string{"open", "in-progress", "resolved", "closed"}, Message: "Invalid status"},
			},
			Defaults:   map[string]any{"status": "open"},
			Stamp:      "reportedAt",
			IDField:    "id",
			GenerateID: true,
		},
		{
			Kind:      "reports",
			Noun:      "Report",
			AddedMsg:  "Report added successfully",
			ArrayPath: "reports",
			Required: []Required{
				{Path: "type", Kind: String, Message: "Invalid report type"},
				{Path: "title", Kind: String, Message: "Report title is required"},
				{Path: "content", Kind: String, Message: "Report content is required"},
				{Path: "author", Kind: String, Message: "Author is required"},
			},
			Enums:      []Enum{{Path: "type", Values: []string{"usage", "performance", "impact", "technical", "financial"}, Message: "Invalid report type"}},
			Stamp:      "date",
			IDField:    "id",
			GenerateID: true,
		},
	},
	MergeOps:  map[string]MergeOp{"analytics": {Section: "analytics", Message: "Analytics updated successfully"}},
	Scores:    learningScores,
	Analytics: learningAnalytics,
	Stats: StatsSpec{
		TotalKey:     "totalPrograms",
		StatusCounts: map[string]string{"activePrograms": "launched"},
		Sums: map[string]string{
			"totalUsers":       "enrollment.totalUsers",
			"totalActiveUsers": "enrollment.activeUsers",
			"totalCompleted":   "enrollment.completedUsers",
		},
		Avgs: map[string]string{
			"averageCompletionRate": "performance.completionRate",
			"averageSatisfaction":   "performance.userSatisfaction",
		},
		Breakdowns: []Breakdown{
			{
				Name:     "programTypes",
				GroupBy:  "type",
				CountKey: "count",
				Sums:     map[string]string{"totalUsers": "enrollment.totalUsers"},
				Avgs:     map[string]string{"averageCompletion": "performance.completionRate"},
			},
			{
				Name:     "topCountries",
				Unwind:   "deployment.countries",
				GroupBy:  "deployment.countries",
				CountKey: "programCount",
				Sums:     map[string]string{"totalUsers": "enrollment.totalUsers"},
				Limit:    10,
			},
		},
	},
}

// Hubs is the literacy-hub category.
var Hubs = Category{
	Name:       "hubs",
	Mount:      "/api/hubs",
	Noun:       "Hub",
	Collection: "literacy_hubs",
	KeyField:   "hubId",
	KeyMessage: "Hub ID is required",
	Required: []Required{
		{Path: "location.name", Kind: String, Message: "Hub name is required"},
		{Path: "location.address", Kind: String, Message: "Address is required"},
		{Path: "location.region", Kind: String, Message: "Region is required"},
		{Path: "location.country", Kind: String, Message: "Country is required"},
		{Path: "capacity.maxStudents", Kind: Number, Message: "Max students must be a number"},
	},
	Enums: []Enum{
		{Path: "status", Values: []string{"active", "inactive", "maintenance", "closed"}, Default: "active", Message: "Invalid status"},
	},
	Filters: map[string]string{
		"status":  "status",
		"country": "location.country",
		"region":  "location.region",
	},
	SortField: "performance.studentProgress.totalStudents",
	ListOmit:  []string{"reports"},
	Children: []Child{
		{
			Kind:      "reports",
			Noun:      "Report",
			AddedMsg:  "Report added successfully",
			ArrayPath: "reports",
			Required: []Required{
				{Path: "type", Kind: String, Message: "Report type is required"},
				{Path: "title", Kind: String, Message: "Report title is required"},
				{Path: "content", Kind: String, Message: "Report content is required"},
				{Path: "author", Kind: String, Message: "Author is required"},
			},
			Stamp:      "date",
			IDField:    "id",
			GenerateID: true,
		},
	},
	Scores:    hubScores,
	Analytics: hubAnalytics,
	Stats: StatsSpec{
		TotalKey:     "totalHubs",
		StatusCounts: map[string]string{"activeHubs": "active"},
		Sums: map[string]string{
			"totalStudents": "capacity.currentEnrollment",
			"totalCapacity": "capacity.maxStudents",
		},
		SizeSums: map[string]string{
			"totalStaff":    "staff",
			"totalPrograms": "programs",
		},
		RatioAvg: &Ratio{
			Name:        "averageUtilization",
			Numerator:   "capacity.currentEnrollment",
			Denominator: "capacity.maxStudents",
		},
		Breakdowns: []Breakdown{
			{
				Name:     "topCountries",
				GroupBy:  "location.country",
				CountKey: "hubCount",
				Sums:     map[string]string{"totalStudents": "capacity.currentEnrollment"},
				SizeSums: map[string]string{"totalPrograms": "programs"},
				Limit:    10,
			},
			{
				Name:     "programTypes",
				Unwind:   "programs",
				GroupBy:  "programs.type",
				CountKey: "count",
				Sums:     map[string]string{"totalEnrollment": "programs.enrollmentCount"},
			},
		},
	},
}

// Devices is the solar-reader-device category.
var Devices = Category{
	Name:       "devices",
	Mount:      "/api/devices",
	Noun:       "Device",
	Collection: "reader_devices",
	KeyField:   "deviceId",
	KeyMessage: "Device ID is required",
	Required: []Required{
		{Path: "location.school", Kind: String, Message: "School name is required"},
		{Path: "location.region", Kind: String, Message: "Region is required"},
		{Path: "location.country", Kind: String, Message: "Country is required"},
	},
	Optional: []Required{
		{Path: "batteryLevel", Kind: Number, Min: 0, Max: 100, Message: "Battery level must be between 0 and 100"},
		{Path: "solarPanelEfficiency", Kind: Number, Min: 0, Max: 100, Message: "Solar panel efficiency must be between 0 and 100"},
	},
	Enums: []Enum{
		{Path: "status", Values: []string{"active", "maintenance", "offline", "deployed"}, Default: "deployed", Message: "Invalid status"},
	},
	Defaults: map[string]any{
		"batteryLevel":         100,
		"solarPanelEfficiency": 85,
	},
	Filters: map[string]string{
		"status":  "status",
		"country": "location.country",
		"region":  "location.region",
	},
	SortField: "usage.lastActivity",
	ListOmit:  []string{"usage.dailyUsage"},
	Children: []Child{
		{
			Kind:      "maintenance",
			Noun:      "Issue",
			AddedMsg:  "Maintenance issue added successfully",
			ArrayPath: "maintenance.issues",
			Required: []Required{
				{Path: "type", Kind: String, Message: "Issue type is required"},
				{Path: "description", Kind: String, Message: "Description is required"},
			},
			Enums:      []Enum{{Path: "status", Values: []string{"open", "in-progress", "resolved"}, Message: "Invalid status"}},
			Defaults:   map[string]any{"status": "open"},
			Stamp:      "reportedAt",
			IDField:    "id",
			GenerateID: true,
		},
	},
	Scores:    deviceScores,
	Analytics: deviceAnalytics,
	Stats: StatsSpec{
		TotalKey:     "totalDevices",
		StatusCounts: map[string]string{"activeDevices": "active"},
		Sums: map[string]string{
			"totalBooks":       "content.totalBooks",
			"totalSessions":    "usage.totalSessions",
			"totalReadingTime": "usage.totalReadingTime",
			"totalUsers":       "usage.uniqueUsers",
		},
		Avgs: map[string]string{
			"averageBatteryLevel": "batteryLevel",
			"averageEfficiency":   "solarPanelEfficiency",
		},
		Breakdowns: []Breakdown{
			{
				Name:     "topCountries",
				GroupBy:  "location.country",
				CountKey: "deviceCount",
				Sums: map[string]string{
					"totalSessions":    "usage.totalSessions",
					"totalReadingTime": "usage.totalReadingTime",
				},
				Limit: 10,
			},
		},
	},
}

// Training is the teacher-training category.
var Training = Category{
	Name:       "training",
	Mount:      "/api/training",
	Noun:       "Program",
	Collection: "training_programs",
	KeyField:   "programId",
	KeyMessage: "Program ID is required",
	Required: []Required{
		{Path: "title", Kind: String, Message: "Title is required"},
		{Path: "description", Kind: String, Message: "Description is required"},
		{Path: "type", Kind: String, Message: "Invalid program type"},
		{Path: "level", Kind: String, Message: "Invalid level"},
		{Path: "enrollment.maxParticipants", Kind: Number, Message: "Max participants must be a number"},
		{Path: "schedule.startDate", Kind: ISODate, Message: "Start date must be valid"},
	},
	Enums: []Enum{
		{Path: "type", Values: []string{"workshop", "certification", "online-course", "mentorship", "conference", "seminar"}, Message: "Invalid program type"},
		{Path: "level", Values: []string{"beginner", "intermediate", "advanced", "expert"}, Message: "Invalid level"},
		{Path: "status", Values: []string{"scheduled", "ongoing", "completed", "cancelled", "postponed"}, Default: "scheduled", Message: "Invalid status"},
	},
	Filters: map[string]string{
		"status":  "status",
		"type":    "type",
		"level":   "level",
		"country": "targetAudience.countries",
	},
	SortField: "schedule.startDate",
	ListOmit:  []string{"reports"},
	Children: []Child{
		{
			Kind:       "teachers",
			Noun:       "Teacher",
			UpdatedMsg: "Teacher progress updated successfully",
			ArrayPath:  "enrollment.participants",
			Optional: []Required{
				{Path: "progress", Kind: Number, Message: "Progress must be a number"},
				{Path: "attendance", Kind: Number, Message: "Attendance must be a number"},
			},
			Enums:     []Enum{{Path: "status", Values: []string{"enrolled", "completed", "dropped", "waitlisted"}, Message: "Invalid status"}},
			IDField:   "teacherId",
			Updatable: true,
			NoAppend:  true,
		},
		{
			Kind:      "reports",
			Noun:      "Report",
			AddedMsg:  "Report added successfully",
			ArrayPath: "reports",
			Required: []Required{
				{Path: "type", Kind: String, Message: "Invalid report type"},
				{Path: "title", Kind: String, Message: "Report title is required"},
				{Path: "content", Kind: String, Message: "Report content is required"},
				{Path: "author", Kind: String, Message: "Author is required"},
			},
			Enums:      []Enum{{Path: "type", Values: []string{"progress", "completion", "evaluation", "impact"}, Message: "Invalid report type"}},
			Stamp:      "date",
			IDField:    "id",
			GenerateID: true,
		},
	},
	Scores:    trainingScores,
	Analytics: trainingAnalytics,
	Stats: StatsSpec{
		TotalKey:     "totalPrograms",
		StatusCounts: map[string]string{"activePrograms": "ongoing"},
		Sums: map[string]string{
			"totalTeachers": "enrollment.currentEnrollment",
			"totalCapacity": "enrollment.maxParticipants",
		},
		Avgs: map[string]string{"averageCompletionRate": "outcomes.completion.completionRate"},
		Breakdowns: []Breakdown{
			{
				Name:     "programTypes",
				GroupBy:  "type",
				CountKey: "count",
				Sums:     map[string]string{"totalTeachers": "enrollment.currentEnrollment"},
				Avgs:     map[string]string{"averageCompletion": "outcomes.completion.completionRate"},
			},
			{
				Name:     "levels",
				GroupBy:  "level",
				CountKey: "count",
				Sums:     map[string]string{"totalTeachers": "enrollment.currentEnrollment"},
			},
			{
				Name:     "topCountries",
				Unwind:   "targetAudience.countries",
				GroupBy:  "targetAudience.countries",
				CountKey: "programCount",
				Sums:     map[string]string{"totalTeachers": "enrollment.currentEnrollment"},
				Limit:    10,
			},
		},
	},
}

// All lists every category in mount order.
func All() []*Category {
	return []*Category{&Campaigns, &Outreach, &Learning, &Hubs, &Devices, &Training}
}
