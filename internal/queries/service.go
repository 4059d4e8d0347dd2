package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"chess-analytics-backend/internal/engines"
	"chess-analytics-backend/internal/records"
	"chess-analytics-backend/internal/shared/metrics"
	"chess-analytics-backend/internal/shared/telemetry"
)

// DefaultSubmitter is recorded when the caller does not identify itself.
const DefaultSubmitter = "anonymous"

// Service orchestrates the query pipeline: persist, classify, retrieve,
// synthesize, persist. Each invocation is an independent unit of work.
type Service struct {
	Repo      Repo
	Retriever *records.Retriever
	Synth     *Synthesizer
}

// NewService constructs a Service.
func NewService(repo Repo, retriever *records.Retriever, synth *Synthesizer) *Service {
	return &Service{Repo: repo, Retriever: retriever, Synth: synth}
}

// Ask answers a free-text question about stored analysis records.
// Empty text is rejected before any state is created. Every accepted query
// ends at status completed or failed, never stuck at processing.
func (s *Service) Ask(ctx context.Context, text, submitterID string) (Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{}, ErrEmptyQuery
	}
	if strings.TrimSpace(submitterID) == "" {
		submitterID = DefaultSubmitter
	}

	metrics.IncQueryReceived()
	start := time.Now()

	query := Query{
		ID:          uuid.NewString(),
		Text:        trimmed,
		SubmitterID: submitterID,
		Status:      StatusProcessing,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, query); err != nil {
		return Result{}, fmt.Errorf("create query: %w", err)
	}
	telemetry.Info("query.received", map[string]any{
		"query_id":  query.ID,
		"submitter": submitterID,
	})

	answer, pipelineErr := s.runPipeline(ctx, trimmed)
	completedAt := time.Now().UTC()

	if pipelineErr != nil {
		s.markFailed(ctx, query.ID, pipelineErr)
		return Result{}, ErrProcessing
	}

	if err := s.Repo.UpdateResult(ctx, query.ID, StatusCompleted, answer, completedAt); err != nil {
		s.markFailed(ctx, query.ID, err)
		return Result{}, ErrProcessing
	}

	metrics.IncQueryCompleted()
	metrics.ObserveQueryDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("query.completed", map[string]any{
		"query_id":   query.ID,
		"intent":     answer.Intent,
		"confidence": answer.Confidence,
	})

	return Result{QueryID: query.ID, Query: trimmed, Response: *answer}, nil
}

// runPipeline executes classify → retrieve → synthesize. The retriever and
// synthesizer absorb their own degraded conditions; anything that still
// escapes (including panics) is an unexpected pipeline failure.
func (s *Service) runPipeline(ctx context.Context, text string) (answer *Answer, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			answer = nil
			err = fmt.Errorf("pipeline panic: %v", rec)
		}
	}()

	entities := engines.Recognize(text)
	intent := Classify(text, entities)
	retrieval := s.Retriever.Retrieve(ctx, entities)
	produced := s.Synth.Synthesize(ctx, text, intent, retrieval)
	return &produced, nil
}

// markFailed records the terminal failed state with the apology answer.
// The externally visible 500 and this persisted record are independent;
// both must occur.
func (s *Service) markFailed(ctx context.Context, queryID string, cause error) {
	failed := failedAnswer()
	if err := s.Repo.UpdateResult(ctx, queryID, StatusFailed, &failed, time.Now().UTC()); err != nil {
		telemetry.Error("query.failed_update", map[string]any{
			"query_id": queryID,
			"error":    err.Error(),
		})
	}
	metrics.IncQueryFailed()
	telemetry.Error("query.failed", map[string]any{
		"query_id": queryID,
		"error":    cause.Error(),
	})
}

func failedAnswer() Answer {
	return Answer{
		Intent:     "unknown",
		Text:       "I apologize, but I encountered an error processing your query. Please try rephrasing your question or check if your data has been uploaded successfully.",
		Confidence: 0,
		Sources:    []string{},
		Suggestions: []string{
			"Try asking about specific engine versions",
			"Upload more data for better analysis",
			"Use simpler, more direct questions",
		},
		RelatedData: records.Summary{TimeRange: "unknown"},
	}
}

// Get returns a stored query.
func (s *Service) Get(ctx context.Context, queryID string) (Query, error) {
	return s.Repo.GetByID(ctx, queryID)
}

// ListRecent returns the most recently submitted queries, newest first.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]Query, error) {
	return s.Repo.ListRecent(ctx, limit)
}
