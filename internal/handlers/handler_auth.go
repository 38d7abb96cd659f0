package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/SscSPs/liq_planning_app/internal/middleware"
	"github.com/SscSPs/liq_planning_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler issues session tokens for local development. In production the
// tokens come from the external identity provider.
type authHandler struct {
	tokenService portssvc.TokenSvc
}

// registerAuthRoutes sets up the token route outside production.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, tokenService portssvc.TokenSvc) {
	if cfg.IsProduction {
		return
	}
	h := &authHandler{tokenService: tokenService}

	// 5 requests per minute per client
	lim, err := middleware.NewMemoryLimiter("5-M")
	if err != nil {
		panic(err)
	}
	auth := r.Group("/api/v1/auth")
	auth.POST("/token", middleware.RateLimit(lim), h.issueToken)
}

func (h *authHandler) issueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DevTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	token, expiresIn, err := h.tokenService.IssueToken(req.UserID)
	if err != nil {
		writeServiceError(c, err, "Failed to issue token")
		return
	}
	logger.Info("Issued development token", slog.String("user_id", req.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresIn: expiresIn})
}
