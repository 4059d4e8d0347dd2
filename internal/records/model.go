package records

import "time"

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// AnalysisRecord is a previously computed analysis result produced by the
// extraction pipeline. This service only ever reads completed records.
type AnalysisRecord struct {
	ID           string         `json:"id"`
	UploadID     string         `json:"uploadId"`
	AnalysisType string         `json:"analysisType"`
	Results      map[string]any `json:"results,omitempty"`
	Status       string         `json:"status"`
	Timestamp    time.Time      `json:"timestamp"`
}
