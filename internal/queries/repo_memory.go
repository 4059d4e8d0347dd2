package queries

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores queries in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Query
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Query)}
}

// Create stores the query.
func (r *MemoryRepo) Create(ctx context.Context, query Query) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[query.ID] = query
	return nil
}

// GetByID returns a query by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, queryID string) (Query, error) {
	if err := ctx.Err(); err != nil {
		return Query{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	query, ok := r.byID[queryID]
	if !ok {
		return Query{}, ErrNotFound
	}
	return query, nil
}

// UpdateResult moves a query to its terminal state with the produced answer.
func (r *MemoryRepo) UpdateResult(ctx context.Context, queryID, status string, answer *Answer, completedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	query, ok := r.byID[queryID]
	if !ok {
		return ErrNotFound
	}
	query.Status = status
	query.Answer = answer
	query.CompletedAt = &completedAt
	r.byID[queryID] = query
	return nil
}

// ListRecent returns queries newest first, capped at limit.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Query, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Query, 0, len(r.byID))
	for _, query := range r.byID {
		out = append(out, query)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
