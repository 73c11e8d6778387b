package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"internsift/app/database"
	"internsift/app/job"
)

func NewHandler(store database.JobStore, version string) *Handler {
	return &Handler{store: store, version: version}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Version: h.version})
}

func (h *Handler) GetStats(c *gin.Context) {
	valid, discarded, err := h.store.RowCounts()
	if err != nil {
		slog.Error("Database error", "operation", "row_counts", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, statsResponse{ValidRows: valid, DiscardedRows: discarded})
}

// GetRecentJobs returns the latest rows of one sheet. Query params:
// sheet=valid|discarded (default valid), limit (default 50, max 500).
func (h *Handler) GetRecentJobs(c *gin.Context) {
	sheet := c.DefaultQuery("sheet", "valid")

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.Status(http.StatusBadRequest)
			return
		}
		limit = v
	}
	if limit > 500 {
		limit = 500
	}

	rows, err := h.store.RecentRows(sheet, limit)
	if err != nil {
		slog.Error("Database error", "operation", "recent_rows", "sheet", sheet, "error", err)
		c.Status(http.StatusBadRequest)
		return
	}
	if rows == nil {
		rows = []job.Row{}
	}
	c.JSON(http.StatusOK, rows)
}
