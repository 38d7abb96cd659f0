package dto

import (
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalaryRequest is one salary history entry. ID is set when editing an existing entry.
type SalaryRequest struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Start  string          `json:"start" binding:"required"`
	End    *string         `json:"end"`
}

// EmployeeRequest defines the data needed to create or update an employee.
// On update the salary list replaces the stored history.
type EmployeeRequest struct {
	Name     string          `json:"name" binding:"required,max=200"`
	Salaries []SalaryRequest `json:"salaries" binding:"omitempty,dive"`
}

// SalaryResponse defines the data returned for a salary entry.
type SalaryResponse struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Start  string          `json:"start"`
	End    *string         `json:"end,omitempty"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Salaries []SalaryResponse `json:"salaries"`
}

// CurrentSalaryResponse is one row of the current salary overview.
type CurrentSalaryResponse struct {
	EmployeeID string          `json:"employeeId"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Start      string          `json:"start"`
	End        *string         `json:"end,omitempty"`
}

// CurrentSalariesResponse lists salaries in effect on a day.
type CurrentSalariesResponse struct {
	AsOf     string                  `json:"asOf"`
	Salaries []CurrentSalaryResponse `json:"salaries"`
	Total    decimal.Decimal         `json:"total"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	res := EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Salaries: make([]SalaryResponse, len(e.Salaries)),
	}
	for i, s := range e.Salaries {
		res.Salaries[i] = SalaryResponse{
			ID:     s.ID,
			Amount: s.Amount,
			Start:  isoDate(s.Start),
			End:    isoDatePtr(s.End),
		}
	}
	return res
}

// ToEmployeeResponses converts a slice of domain.Employee to []EmployeeResponse.
func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}

// ToCurrentSalariesResponse builds the overview and its total.
func ToCurrentSalariesResponse(asOf string, current []domain.CurrentSalary) CurrentSalariesResponse {
	res := CurrentSalariesResponse{
		AsOf:     asOf,
		Salaries: make([]CurrentSalaryResponse, len(current)),
		Total:    decimal.Zero,
	}
	for i, c := range current {
		res.Salaries[i] = CurrentSalaryResponse{
			EmployeeID: c.EmployeeID,
			Name:       c.EmployeeName,
			Amount:     c.Salary.Amount,
			Start:      isoDate(c.Salary.Start),
			End:        isoDatePtr(c.Salary.End),
		}
		res.Total = res.Total.Add(c.Salary.Amount)
	}
	return res
}
