package main

// Load demo analysis records into Postgres:
//   go run ./cmd/seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"

	"chess-analytics-backend/internal/records"
	"chess-analytics-backend/internal/shared/config"
	"chess-analytics-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	inserted, err := seed(ctx, sqlDB, records.DemoRecords())
	if err != nil {
		log.Printf("failed to seed demo records: %v", err)
		os.Exit(1)
	}
	log.Printf("seeded %d demo records", inserted)
}

func seed(ctx context.Context, sqlDB *sql.DB, demo []records.AnalysisRecord) (int, error) {
	const query = `
		INSERT INTO analyses (id, upload_id, analysis_type, results, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	inserted := 0
	for _, record := range demo {
		results, err := json.Marshal(record.Results)
		if err != nil {
			return inserted, err
		}
		res, err := sqlDB.ExecContext(ctx, query,
			record.ID, record.UploadID, record.AnalysisType, results, record.Status, record.Timestamp)
		if err != nil {
			return inserted, err
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			inserted++
		}
	}
	return inserted, nil
}
