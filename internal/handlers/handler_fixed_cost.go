package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type fixedCostHandler struct {
	fixedCostService portssvc.FixedCostSvcFacade
}

func newFixedCostHandler(fs portssvc.FixedCostSvcFacade) *fixedCostHandler {
	return &fixedCostHandler{fixedCostService: fs}
}

// registerFixedCostRoutes registers routes related to recurring costs.
func registerFixedCostRoutes(rg *gin.RouterGroup, fixedCostService portssvc.FixedCostSvcFacade) {
	h := newFixedCostHandler(fixedCostService)

	costs := rg.Group("/fixed-costs")
	{
		costs.GET("", h.listFixedCosts)
		costs.POST("", h.createFixedCost)
		costs.GET("/monthly-total", h.monthlyTotal)
		costs.PUT("/:id", h.updateFixedCost)
		costs.POST("/:id/stop", h.stopFixedCost)
		costs.DELETE("/:id", h.deleteFixedCost)
	}
}

func (h *fixedCostHandler) listFixedCosts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	costs, err := h.fixedCostService.ListFixedCosts(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "Failed to list fixed costs")
		return
	}
	c.JSON(http.StatusOK, dto.ToFixedCostResponses(costs))
}

// monthlyTotal returns the monthly equivalent of all costs running today.
func (h *fixedCostHandler) monthlyTotal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	total, err := h.fixedCostService.MonthlyTotal(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "Failed to compute monthly total")
		return
	}
	c.JSON(http.StatusOK, dto.MonthlyTotalResponse{
		AsOf:  time.Now().UTC().Format(time.DateOnly),
		Total: total,
	})
}

func (h *fixedCostHandler) createFixedCost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.FixedCostRequest
	if !bindJSON(c, &req) {
		return
	}
	cost, err := h.fixedCostService.CreateFixedCost(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to create fixed cost")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFixedCostResponse(cost))
}

func (h *fixedCostHandler) updateFixedCost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.FixedCostRequest
	if !bindJSON(c, &req) {
		return
	}
	cost, err := h.fixedCostService.UpdateFixedCost(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to update fixed cost")
		return
	}
	c.JSON(http.StatusOK, dto.ToFixedCostResponse(cost))
}

// stopFixedCost ends the cost today instead of deleting it.
func (h *fixedCostHandler) stopFixedCost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	cost, err := h.fixedCostService.StopFixedCost(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeServiceError(c, err, "Failed to stop fixed cost")
		return
	}
	c.JSON(http.StatusOK, dto.ToFixedCostResponse(cost))
}

func (h *fixedCostHandler) deleteFixedCost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.fixedCostService.DeleteFixedCost(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeServiceError(c, err, "Failed to delete fixed cost")
		return
	}
	c.Status(http.StatusNoContent)
}
