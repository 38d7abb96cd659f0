package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/liq_planning_app/internal/core/planning"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type planningHandler struct {
	planningService portssvc.PlanningSvc
}

func newPlanningHandler(ps portssvc.PlanningSvc) *planningHandler {
	return &planningHandler{planningService: ps}
}

// registerPlanningRoutes registers the projection, summary and export routes.
func registerPlanningRoutes(rg *gin.RouterGroup, planningService portssvc.PlanningSvc) {
	h := newPlanningHandler(planningService)

	pl := rg.Group("/planning")
	{
		pl.GET("/projection", h.getProjection)
		pl.GET("/summary", h.getSummary)
		pl.GET("/export", h.exportProjection)
	}
}

func bindProjectionParams(c *gin.Context) (dto.ProjectionParams, bool) {
	var params dto.ProjectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// getProjection returns the ledger with running balances. The lowest point is
// taken from the unfiltered ledger so a search cannot hide an overdraft.
func (h *planningHandler) getProjection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	params, ok := bindProjectionParams(c)
	if !ok {
		return
	}

	res, err := h.planningService.Project(c.Request.Context(), params, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to compute projection")
		return
	}
	lowest := planning.LowestBalance(planning.DailyBalances(res.Full))
	c.JSON(http.StatusOK, dto.ToProjectionResponse(res.RangeStart, res.RangeEnd, res.Projection, lowest))
}

func (h *planningHandler) getSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	params, ok := bindProjectionParams(c)
	if !ok {
		return
	}

	res, err := h.planningService.Summary(c.Request.Context(), params, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, res)
}

// exportProjection streams the projection as an xlsx or pdf attachment.
func (h *planningHandler) exportProjection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	params, ok := bindProjectionParams(c)
	if !ok {
		return
	}

	file, err := h.planningService.Export(c.Request.Context(), params, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to export projection")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
