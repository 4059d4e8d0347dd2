package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chess-analytics-backend/internal/queries"
	"chess-analytics-backend/internal/records"
	"chess-analytics-backend/internal/services/health"
	"chess-analytics-backend/internal/shared/config"
	"chess-analytics-backend/internal/shared/metrics"
	"chess-analytics-backend/internal/shared/server/middleware"
	"chess-analytics-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config         config.Config
	QueryHandler   *queries.Handler
	RecordsHandler *records.Handler
	Health         *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"QUERY": {Rate: 2, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/queries" {
					return "QUERY"
				}
				return ""
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	api.GET("/metrics", metrics.Handler())
	deps.QueryHandler.RegisterRoutes(api)
	deps.RecordsHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
