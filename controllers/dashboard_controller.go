package controllers

import (
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

// GetDashboard handles GET /v1/admin/dashboard
func (h *Controller) GetDashboard(c *gin.Context) {
	stats, err := h.Dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}
	utils.Success(c, "Dashboard retrieved successfully", stats)
}
