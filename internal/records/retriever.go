package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"chess-analytics-backend/internal/shared/metrics"
	"chess-analytics-backend/internal/shared/telemetry"
)

// DefaultWindow caps how many completed records a retrieval inspects.
const DefaultWindow = 50

// Summary aggregates the retrieved window for answer synthesis.
type Summary struct {
	GamesAnalyzed int      `json:"gamesAnalyzed"`
	Engines       []string `json:"engines"`
	TimeRange     string   `json:"timeRange"`
}

// Retrieval is the outcome of fetching and filtering the record window.
type Retrieval struct {
	Records []AnalysisRecord
	Summary Summary
}

// Retriever fetches the most recent completed analysis records and narrows
// them to the engines a query mentions.
type Retriever struct {
	Repo  Repo
	Limit int
}

// NewRetriever constructs a Retriever. A non-positive limit falls back to
// DefaultWindow.
func NewRetriever(repo Repo, limit int) *Retriever {
	if limit <= 0 {
		limit = DefaultWindow
	}
	return &Retriever{Repo: repo, Limit: limit}
}

// Retrieve returns the filtered window plus its summary. A store failure is
// absorbed: the caller gets an empty retrieval and the pipeline continues
// with a degraded answer.
func (r *Retriever) Retrieve(ctx context.Context, entities []string) Retrieval {
	window, err := r.Repo.ListCompleted(ctx, r.Limit)
	if err != nil {
		telemetry.Warn("retrieval.degraded", map[string]any{
			"error":    err.Error(),
			"entities": entities,
		})
		metrics.IncRetrievalDegraded()
		return Retrieval{Summary: emptySummary()}
	}

	relevant := filterByEntities(window, entities)
	return Retrieval{
		Records: relevant,
		Summary: summarize(relevant),
	}
}

// filterByEntities keeps records whose serialized content mentions at least
// one recognized engine. An empty entity set passes the window through.
func filterByEntities(window []AnalysisRecord, entities []string) []AnalysisRecord {
	if len(entities) == 0 {
		return window
	}
	lowered := make([]string, len(entities))
	for i, e := range entities {
		lowered[i] = strings.ToLower(e)
	}

	var out []AnalysisRecord
	for _, record := range window {
		serialized, err := json.Marshal(record)
		if err != nil {
			continue
		}
		text := strings.ToLower(string(serialized))
		for _, entity := range lowered {
			if strings.Contains(text, entity) {
				out = append(out, record)
				break
			}
		}
	}
	return out
}

func summarize(window []AnalysisRecord) Summary {
	if len(window) == 0 {
		return emptySummary()
	}

	summary := Summary{TimeRange: "unknown"}
	seen := make(map[string]struct{})
	minTS := window[0].Timestamp
	maxTS := window[0].Timestamp

	for _, record := range window {
		insights, _ := record.Results["aiInsights"].(map[string]any)
		if insights != nil {
			summary.GamesAnalyzed += intField(insights, "gamesAnalyzed")
			if keyMetrics, ok := insights["keyMetrics"].(map[string]any); ok {
				for _, name := range stringListField(keyMetrics, "engines") {
					if _, dup := seen[name]; dup {
						continue
					}
					seen[name] = struct{}{}
					summary.Engines = append(summary.Engines, name)
				}
			}
		}
		if record.Timestamp.Before(minTS) {
			minTS = record.Timestamp
		}
		if record.Timestamp.After(maxTS) {
			maxTS = record.Timestamp
		}
	}

	if !minTS.IsZero() {
		summary.TimeRange = fmt.Sprintf("%s - %s", minTS.Format("Jan 2, 2006"), maxTS.Format("Jan 2, 2006"))
	}
	return summary
}

func emptySummary() Summary {
	return Summary{GamesAnalyzed: 0, Engines: nil, TimeRange: "unknown"}
}

// intField reads a numeric field that may arrive as float64 (JSON), int, or int64.
func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func stringListField(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		if typed, ok2 := m[key].([]string); ok2 {
			return typed
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
