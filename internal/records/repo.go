package records

import "context"

// Repo defines read access to stored analysis records. The query pipeline
// never writes this collection; Seed exists for the extraction collaborator
// and for tests.
type Repo interface {
	ListCompleted(ctx context.Context, limit int) ([]AnalysisRecord, error)
}
