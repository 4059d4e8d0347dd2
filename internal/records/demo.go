package records

import "time"

// DemoRecords returns a small set of completed analyses shaped like real
// pipeline output. Dev mode and the seed command load these so queries have
// data to work with before any uploads exist.
func DemoRecords() []AnalysisRecord {
	return []AnalysisRecord{
		{
			ID:           "demo-0001",
			UploadID:     "upload-demo-0001",
			AnalysisType: "tournament",
			Results: map[string]any{
				"aiInsights": map[string]any{
					"gamesAnalyzed": 60,
					"headline":      "V7P3R leads in tactical sharpness",
					"keyMetrics": map[string]any{
						"engines":          []any{"V7P3R", "SLOWMATE"},
						"avgAccuracy":      87.4,
						"tacticalScore":    92,
						"timeManagement":   74,
						"openingDiversity": 12,
					},
				},
			},
			Status:    StatusCompleted,
			Timestamp: time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:           "demo-0002",
			UploadID:     "upload-demo-0002",
			AnalysisType: "tournament",
			Results: map[string]any{
				"aiInsights": map[string]any{
					"gamesAnalyzed": 45,
					"headline":      "SLOWMATE strongest in long time controls",
					"keyMetrics": map[string]any{
						"engines":        []any{"SLOWMATE", "C0BR4"},
						"avgAccuracy":    84.1,
						"endgameScore":   88,
						"timeManagement": 91,
					},
				},
			},
			Status:    StatusCompleted,
			Timestamp: time.Date(2025, time.January, 20, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:           "demo-0003",
			UploadID:     "upload-demo-0003",
			AnalysisType: "match",
			Results: map[string]any{
				"aiInsights": map[string]any{
					"gamesAnalyzed": 25,
					"headline":      "C0BR4 struggles in closed positions",
					"keyMetrics": map[string]any{
						"engines":         []any{"C0BR4", "V7P3R"},
						"avgAccuracy":     79.8,
						"positionalScore": 63,
						"blunderRate":     4.2,
					},
				},
			},
			Status:    StatusCompleted,
			Timestamp: time.Date(2025, time.February, 3, 11, 15, 0, 0, time.UTC),
		},
	}
}
