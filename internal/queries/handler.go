package queries

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chess-analytics-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the queries service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches query routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/queries", h.submitQuery)
	rg.GET("/queries", h.listQueries)
	rg.GET("/queries/:id", h.getQuery)
}

type submitRequest struct {
	Query  string `json:"query"`
	UserID string `json:"userId"`
}

func (h *Handler) submitQuery(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Ask(c.Request.Context(), req.Query, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyQuery):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Query is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Query processing failed", nil)
		}
		return
	}

	c.Set("queryId", result.QueryID)
	c.Set("intent", result.Response.Intent)
	respond.OK(c, result)
}

func (h *Handler) getQuery(c *gin.Context) {
	queryID := c.Param("id")
	if queryID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "query id is required", nil)
		return
	}

	query, err := h.Svc.Get(c.Request.Context(), queryID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "query not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch query", nil)
		}
		return
	}
	respond.OK(c, query)
}

func (h *Handler) listQueries(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	recent, err := h.Svc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list queries", nil)
		return
	}
	if recent == nil {
		recent = []Query{}
	}
	respond.OK(c, gin.H{"queries": recent, "count": len(recent)})
}
