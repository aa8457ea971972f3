package handlers

import (
	"net/http"

	"agencyportal/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	stats services.StatsService
}

func NewDashboardHandler(base *BaseHandler, stats services.StatsService) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, stats: stats}
}

// Stats returns the aggregate counts only.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.stats.ComputeStats(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Snapshot returns counts plus the recent activity feed.
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	snap, err := h.stats.Snapshot(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
