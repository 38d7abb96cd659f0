package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type simulationHandler struct {
	simulationService portssvc.SimulationSvcFacade
}

func newSimulationHandler(ss portssvc.SimulationSvcFacade) *simulationHandler {
	return &simulationHandler{simulationService: ss}
}

// registerSimulationRoutes registers routes related to scenario bookings.
func registerSimulationRoutes(rg *gin.RouterGroup, simulationService portssvc.SimulationSvcFacade) {
	h := newSimulationHandler(simulationService)

	sims := rg.Group("/simulations")
	{
		sims.GET("", h.listSimulations)
		sims.POST("", h.createSimulation)
		sims.PUT("", h.replaceSimulations)
		sims.PUT("/:id", h.updateSimulation)
		sims.DELETE("/:id", h.deleteSimulation)
	}
}

func (h *simulationHandler) listSimulations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sims, err := h.simulationService.ListSimulations(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "Failed to list simulations")
		return
	}
	c.JSON(http.StatusOK, dto.ToSimulationResponses(sims))
}

func (h *simulationHandler) createSimulation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.SimulationRequest
	if !bindJSON(c, &req) {
		return
	}
	sim, err := h.simulationService.CreateSimulation(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to create simulation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSimulationResponse(sim))
}

// replaceSimulations swaps the whole scenario; an empty list clears it.
func (h *simulationHandler) replaceSimulations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ReplaceSimulationsRequest
	if !bindJSON(c, &req) {
		return
	}
	sims, err := h.simulationService.ReplaceSimulations(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to replace simulations")
		return
	}
	c.JSON(http.StatusOK, dto.ToSimulationResponses(sims))
}

func (h *simulationHandler) updateSimulation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.SimulationRequest
	if !bindJSON(c, &req) {
		return
	}
	sim, err := h.simulationService.UpdateSimulation(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to update simulation")
		return
	}
	c.JSON(http.StatusOK, dto.ToSimulationResponse(sim))
}

func (h *simulationHandler) deleteSimulation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.simulationService.DeleteSimulation(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeServiceError(c, err, "Failed to delete simulation")
		return
	}
	c.Status(http.StatusNoContent)
}
