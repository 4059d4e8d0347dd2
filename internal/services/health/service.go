package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a new health service. DB may be nil when running
// on in-memory repositories.
func NewService(database *sql.DB) *Service {
	return &Service{DB: database}
}

// Status returns a health payload including store reachability.
func (s *Service) Status(ctx context.Context) map[string]any {
	payload := map[string]any{"ok": true, "store": "memory"}
	if s.DB == nil {
		return payload
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		payload["store"] = "unreachable"
		return payload
	}
	payload["store"] = "postgres"
	return payload
}
