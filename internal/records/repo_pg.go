package records

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ListCompleted returns completed records newest first, capped at limit.
func (r *PGRepo) ListCompleted(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	const query = `
SELECT id, upload_id, analysis_type, results, status, created_at
FROM analyses
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, StatusCompleted, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnalysisRecord
	for rows.Next() {
		var record AnalysisRecord
		var results []byte
		if err := rows.Scan(&record.ID, &record.UploadID, &record.AnalysisType, &results, &record.Status, &record.Timestamp); err != nil {
			return nil, err
		}
		if len(results) > 0 {
			if err := json.Unmarshal(results, &record.Results); err != nil {
				return nil, err
			}
		}
		out = append(out, record)
	}
	return out, rows.Err()
}
