package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new query.
func (r *PGRepo) Create(ctx context.Context, query Query) error {
	const stmt = `
INSERT INTO queries (id, query_text, submitter_id, status, answer, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	answer, err := marshalAnswer(query.Answer)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, stmt,
		query.ID,
		query.Text,
		query.SubmitterID,
		query.Status,
		answer,
		query.SubmittedAt,
	)
	return err
}

// GetByID returns a query by its ID.
func (r *PGRepo) GetByID(ctx context.Context, queryID string) (Query, error) {
	const stmt = `
SELECT id, query_text, submitter_id, status, answer, submitted_at, completed_at
FROM queries
WHERE id = $1`
	return scanQuery(r.DB.QueryRowContext(ctx, stmt, queryID))
}

// UpdateResult moves a query to its terminal state with the produced answer.
func (r *PGRepo) UpdateResult(ctx context.Context, queryID, status string, answer *Answer, completedAt time.Time) error {
	const stmt = `
UPDATE queries
SET status = $2, answer = $3, completed_at = $4
WHERE id = $1`
	payload, err := marshalAnswer(answer)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, stmt, queryID, status, payload, completedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRecent returns queries newest first, capped at limit.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Query, error) {
	const stmt = `
SELECT id, query_text, submitter_id, status, answer, submitted_at, completed_at
FROM queries
ORDER BY submitted_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, stmt, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Query
	for rows.Next() {
		query, err := scanQuery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, query)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuery(row rowScanner) (Query, error) {
	var query Query
	var answer []byte
	var completedAt sql.NullTime
	err := row.Scan(&query.ID, &query.Text, &query.SubmitterID, &query.Status, &answer, &query.SubmittedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Query{}, ErrNotFound
	}
	if err != nil {
		return Query{}, err
	}
	if len(answer) > 0 {
		query.Answer = &Answer{}
		if err := json.Unmarshal(answer, query.Answer); err != nil {
			return Query{}, err
		}
	}
	if completedAt.Valid {
		ts := completedAt.Time
		query.CompletedAt = &ts
	}
	return query, nil
}

func marshalAnswer(answer *Answer) (any, error) {
	if answer == nil {
		return nil, nil
	}
	payload, err := json.Marshal(answer)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
