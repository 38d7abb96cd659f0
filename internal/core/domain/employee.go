package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Salary is one entry of an employee's salary history. A nil End means open-ended.
type Salary struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employeeId"`
	Amount     decimal.Decimal `json:"amount"`
	Start      time.Time       `json:"start"`
	End        *time.Time      `json:"end,omitempty"`
}

// ValidOn reports whether Start <= day <= End (open End counts as infinity).
func (s Salary) ValidOn(day time.Time) bool {
	if day.Before(s.Start) {
		return false
	}
	return s.End == nil || !day.After(*s.End)
}

// Employee owns a salary history.
type Employee struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Salaries []Salary `json:"salaries"`
	AuditFields
}

// CurrentSalary resolves the salary in effect on today: the history is
// ordered by Start descending and the first entry valid on today wins.
func (e Employee) CurrentSalary(today time.Time) (Salary, bool) {
	history := make([]Salary, len(e.Salaries))
	copy(history, e.Salaries)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Start.After(history[j].Start)
	})
	for _, s := range history {
		if s.ValidOn(today) {
			return s, true
		}
	}
	return Salary{}, false
}

// Validate checks the name and each salary entry.
func (e Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return apperrors.NewValidationError("employee name is required")
	}
	for _, s := range e.Salaries {
		if s.Amount.IsNegative() {
			return apperrors.NewValidationError("salary amount must not be negative")
		}
		if s.Start.IsZero() {
			return apperrors.NewValidationError("salary start date is required")
		}
		if s.End != nil && s.End.Before(s.Start) {
			return apperrors.NewValidationError("salary end date must not be before its start date")
		}
	}
	return nil
}
