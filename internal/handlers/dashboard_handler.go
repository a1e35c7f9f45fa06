package handlers

import (
	"net/http"

	"arportal/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, dashboardService: dashboardService}
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Stats(h.GetDB(c), claims)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
