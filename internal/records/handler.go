package records

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chess-analytics-backend/internal/shared/server/respond"
)

// Handler exposes the read-only record window consumed by the dashboard.
type Handler struct {
	Repo  Repo
	Limit int
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo, limit int) *Handler {
	if limit <= 0 {
		limit = DefaultWindow
	}
	return &Handler{Repo: repo, Limit: limit}
}

// RegisterRoutes attaches record routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/records", h.listRecords)
}

func (h *Handler) listRecords(c *gin.Context) {
	limit := h.Limit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed < limit {
			limit = parsed
		}
	}

	window, err := h.Repo.ListCompleted(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list records", nil)
		return
	}
	if window == nil {
		window = []AnalysisRecord{}
	}
	respond.OK(c, gin.H{"records": window, "count": len(window)})
}
