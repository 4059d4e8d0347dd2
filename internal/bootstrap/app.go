package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"chess-analytics-backend/internal/llm"
	openaigen "chess-analytics-backend/internal/llm/openai"
	"chess-analytics-backend/internal/queries"
	"chess-analytics-backend/internal/records"
	"chess-analytics-backend/internal/services/health"
	"chess-analytics-backend/internal/shared/config"
	"chess-analytics-backend/internal/shared/server"
	"chess-analytics-backend/internal/shared/storage/db"
)

// App holds shared dependencies wired at startup. Dependencies are explicit:
// nothing reaches for package-level clients.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	QueriesRepo    queries.Repo
	RecordsRepo    records.Repo
	QueriesService *queries.Service
	QueryHandler   *queries.Handler
	RecordsHandler *records.Handler
	Health         *health.Service
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		QueryHandler:   app.QueryHandler,
		RecordsHandler: app.RecordsHandler,
		Health:         app.Health,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	var queriesRepo queries.Repo
	var recordsRepo records.Repo
	if app.DB != nil {
		queriesRepo = &queries.PGRepo{DB: app.DB}
		recordsRepo = &records.PGRepo{DB: app.DB}
	} else {
		queriesRepo = queries.NewMemoryRepo()
		memRecords := records.NewMemoryRepo()
		for _, record := range records.DemoRecords() {
			if err := memRecords.Seed(context.Background(), record); err != nil {
				return err
			}
		}
		recordsRepo = memRecords
	}

	generator := llm.Generator(llm.PlaceholderGenerator{})
	if app.Config.LLMProvider == "openai" {
		apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		if apiKey == "" || strings.TrimSpace(app.Config.LLMModel) == "" {
			// Enrichment is optional; run without it rather than fail startup.
			log.Printf("bootstrap: openai not fully configured; enrichment disabled")
		} else {
			client, err := openaigen.NewClient(apiKey, app.Config.LLMModel)
			if err != nil {
				return err
			}
			generator = client
		}
	}

	retriever := records.NewRetriever(recordsRepo, app.Config.RetrievalLimit)
	synth := queries.NewSynthesizer(generator)

	app.QueriesRepo = queriesRepo
	app.RecordsRepo = recordsRepo
	app.QueriesService = queries.NewService(queriesRepo, retriever, synth)
	app.QueryHandler = queries.NewHandler(app.QueriesService)
	app.RecordsHandler = records.NewHandler(recordsRepo, app.Config.RetrievalLimit)
	app.Health = health.NewService(app.DB)
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
