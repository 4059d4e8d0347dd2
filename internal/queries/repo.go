package queries

import (
	"context"
	"time"
)

// Repo defines persistence operations for queries.
type Repo interface {
	Create(ctx context.Context, query Query) error
	GetByID(ctx context.Context, queryID string) (Query, error)
	UpdateResult(ctx context.Context, queryID, status string, answer *Answer, completedAt time.Time) error
	ListRecent(ctx context.Context, limit int) ([]Query, error)
}
