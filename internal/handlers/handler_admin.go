package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(rg *gin.RouterGroup, adminService portssvc.AdminSvc) {
	rg.POST("/admin/reset", func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		if err := adminService.Reset(c.Request.Context(), userID); err != nil {
			writeServiceError(c, err, "Failed to reset data")
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("All planner data deleted", slog.String("user_id", userID))
		c.Status(http.StatusNoContent)
	})
}

// healthCheck answers 200 when the store is reachable.
func healthCheck(adminService portssvc.AdminSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminService != nil {
			if err := adminService.Health(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}
