package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees and salaries.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/current-salaries", h.currentSalaries)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}
}

func (h *employeeHandler) listEmployees(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// currentSalaries lists the salary in effect today per employee and their sum.
func (h *employeeHandler) currentSalaries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	current, err := h.employeeService.CurrentSalaries(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "Failed to resolve current salaries")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrentSalariesResponse(time.Now().UTC().Format(time.DateOnly), current))
}

func (h *employeeHandler) createEmployee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.EmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// updateEmployee replaces the name and the whole salary history.
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.EmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeServiceError(c, err, "Failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}
