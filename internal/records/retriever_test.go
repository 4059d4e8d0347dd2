package records

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type failingRepo struct{}

func (failingRepo) ListCompleted(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	return nil, errors.New("store unreachable")
}

func completedRecord(id string, engines []string, games int, ts time.Time) AnalysisRecord {
	names := make([]any, len(engines))
	for i, e := range engines {
		names[i] = e
	}
	return AnalysisRecord{
		ID:           id,
		UploadID:     "upload-" + id,
		AnalysisType: "comprehensive",
		Status:       StatusCompleted,
		Timestamp:    ts,
		Results: map[string]any{
			"aiInsights": map[string]any{
				"gamesAnalyzed": float64(games),
				"keyMetrics":    map[string]any{"engines": names},
			},
		},
	}
}

func TestRetrieveFiltersByEntities(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Now()
	mustSeed(t, repo, completedRecord("a1", []string{"V7P3R"}, 30, now.Add(-2*time.Hour)))
	mustSeed(t, repo, completedRecord("a2", []string{"SLOWMATE"}, 20, now.Add(-time.Hour)))
	mustSeed(t, repo, completedRecord("a3", []string{"V7P3R", "C0BR4"}, 50, now))

	retriever := NewRetriever(repo, DefaultWindow)

	unfiltered := retriever.Retrieve(context.Background(), nil)
	if len(unfiltered.Records) != 3 {
		t.Fatalf("expected full window without entities, got %d", len(unfiltered.Records))
	}

	filtered := retriever.Retrieve(context.Background(), []string{"V7P3R"})
	if len(filtered.Records) != 2 {
		t.Fatalf("expected 2 matching records, got %d", len(filtered.Records))
	}
	// Filtering never yields a superset of the window.
	if len(filtered.Records) > len(unfiltered.Records) {
		t.Fatalf("filtered set larger than window")
	}
	if filtered.Summary.GamesAnalyzed != 80 {
		t.Fatalf("expected 80 games analyzed, got %d", filtered.Summary.GamesAnalyzed)
	}

	none := retriever.Retrieve(context.Background(), []string{"STOCKFISH"})
	if len(none.Records) != 0 {
		t.Fatalf("expected no matches, got %d", len(none.Records))
	}
	if none.Summary.TimeRange != "unknown" {
		t.Fatalf("expected unknown time range, got %q", none.Summary.TimeRange)
	}
}

func TestRetrieveCapsWindow(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Now()
	for i := 0; i < DefaultWindow+20; i++ {
		mustSeed(t, repo, completedRecord(fmt.Sprintf("a%d", i), []string{"V7P3R"}, 1, now.Add(-time.Duration(i)*time.Minute)))
	}

	retriever := NewRetriever(repo, DefaultWindow)
	ret := retriever.Retrieve(context.Background(), nil)
	if len(ret.Records) > DefaultWindow {
		t.Fatalf("window exceeded %d: %d", DefaultWindow, len(ret.Records))
	}
	if len(ret.Records) != DefaultWindow {
		t.Fatalf("expected exactly %d records, got %d", DefaultWindow, len(ret.Records))
	}
}

func TestRetrieveSummaryAggregates(t *testing.T) {
	repo := NewMemoryRepo()
	oldest := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	newest := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	mustSeed(t, repo, completedRecord("a1", []string{"V7P3R", "SLOWMATE"}, 40, oldest))
	mustSeed(t, repo, completedRecord("a2", []string{"V7P3R"}, 60, newest))

	retriever := NewRetriever(repo, DefaultWindow)
	ret := retriever.Retrieve(context.Background(), nil)

	if ret.Summary.GamesAnalyzed != 100 {
		t.Fatalf("expected 100 games, got %d", ret.Summary.GamesAnalyzed)
	}
	if len(ret.Summary.Engines) != 2 {
		t.Fatalf("expected 2 distinct engines, got %v", ret.Summary.Engines)
	}
	want := "Jan 1, 2025 - Feb 1, 2025"
	if ret.Summary.TimeRange != want {
		t.Fatalf("expected time range %q, got %q", want, ret.Summary.TimeRange)
	}
}

func TestRetrieveSummaryToleratesMissingFields(t *testing.T) {
	repo := NewMemoryRepo()
	mustSeed(t, repo, AnalysisRecord{
		ID:        "bare",
		Status:    StatusCompleted,
		Timestamp: time.Now(),
		Results:   map[string]any{"something": "else"},
	})

	retriever := NewRetriever(repo, DefaultWindow)
	ret := retriever.Retrieve(context.Background(), nil)
	if ret.Summary.GamesAnalyzed != 0 {
		t.Fatalf("expected 0 games for missing field, got %d", ret.Summary.GamesAnalyzed)
	}
	if len(ret.Summary.Engines) != 0 {
		t.Fatalf("expected no engines, got %v", ret.Summary.Engines)
	}
}

func TestRetrieveAbsorbsStoreFailure(t *testing.T) {
	retriever := NewRetriever(failingRepo{}, DefaultWindow)
	ret := retriever.Retrieve(context.Background(), []string{"V7P3R"})

	if len(ret.Records) != 0 {
		t.Fatalf("expected empty result on store failure, got %d", len(ret.Records))
	}
	if ret.Summary.GamesAnalyzed != 0 || ret.Summary.TimeRange != "unknown" {
		t.Fatalf("expected degraded summary, got %+v", ret.Summary)
	}
}

func mustSeed(t *testing.T, repo *MemoryRepo, record AnalysisRecord) {
	t.Helper()
	if err := repo.Seed(context.Background(), record); err != nil {
		t.Fatalf("seed: %v", err)
	}
}
