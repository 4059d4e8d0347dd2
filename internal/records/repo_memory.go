package records

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores analysis records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]AnalysisRecord
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]AnalysisRecord)}
}

// Seed stores a record. Used to load demo data in dev mode and by tests.
func (r *MemoryRepo) Seed(ctx context.Context, record AnalysisRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[record.ID] = record
	return nil
}

// ListCompleted returns completed records newest first, capped at limit.
func (r *MemoryRepo) ListCompleted(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]AnalysisRecord, 0, len(r.byID))
	for _, record := range r.byID {
		if record.Status == StatusCompleted {
			out = append(out, record)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
