package handlers

import (
	"log/slog"

	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/middleware"
	"github.com/SscSPs/liq_planning_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	r.GET("/health", healthCheck(services.Admin))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Token)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerBookingRoutes(v1, service.Booking)
	registerFixedCostRoutes(v1, service.FixedCost)
	registerEmployeeRoutes(v1, service.Employee)
	registerSimulationRoutes(v1, service.Simulation)
	registerPlanningRoutes(v1, service.Planning)
	registerAdminRoutes(v1, service.Admin)

	var importLimit []gin.HandlerFunc
	if lim, err := middleware.NewMemoryLimiter(cfg.ImportRateLimit); err != nil {
		slog.Warn("Import rate limit disabled", slog.String("error", err.Error()))
	} else {
		importLimit = append(importLimit, middleware.RateLimit(lim))
	}
	registerImportRoutes(v1, service.Import, cfg.MaxUploadBytes, importLimit...)
}
