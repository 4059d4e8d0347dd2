package queries

import (
	"time"

	"chess-analytics-backend/internal/records"
)

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Query is a submitted natural-language question and its lifecycle state.
// It is created once at status processing and updated exactly once, to
// completed or failed.
type Query struct {
	ID          string     `json:"id"`
	Text        string     `json:"query"`
	SubmitterID string     `json:"submitterId"`
	Status      string     `json:"status"`
	Answer      *Answer    `json:"answer,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Answer is the structured response synthesized for a query.
type Answer struct {
	Intent      string          `json:"intent"`
	Text        string          `json:"answer"`
	Confidence  float64         `json:"confidence"`
	Sources     []string        `json:"sources"`
	Suggestions []string        `json:"suggestions"`
	RelatedData records.Summary `json:"relatedData"`
}

// Result is the payload returned to the caller on success.
type Result struct {
	QueryID  string `json:"queryId"`
	Query    string `json:"query"`
	Response Answer `json:"response"`
}
