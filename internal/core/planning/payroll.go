package planning

import (
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/google/uuid"
)

// PayDay is the day of month salaries leave the account.
const PayDay = 25

// ResolveCurrentSalaries picks each employee's salary in effect on today.
// Employees without a matching entry are left out.
func ResolveCurrentSalaries(employees []domain.Employee, today time.Time) []domain.CurrentSalary {
	out := make([]domain.CurrentSalary, 0, len(employees))
	for _, emp := range employees {
		salary, ok := emp.CurrentSalary(today)
		if !ok {
			continue
		}
		out = append(out, domain.CurrentSalary{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Salary:       salary,
		})
	}
	return out
}

// ExpandPayroll emits one outgoing Lohn booking per employee for every 25th
// in [rangeStart, rangeEnd] on which the resolved salary is valid. Pay days
// are not moved off weekends.
func ExpandPayroll(current []domain.CurrentSalary, rangeStart, rangeEnd time.Time) []domain.Booking {
	var out []domain.Booking
	day := time.Date(rangeStart.Year(), rangeStart.Month(), PayDay, 0, 0, 0, 0, rangeStart.Location())
	if day.Before(rangeStart) {
		day = day.AddDate(0, 1, 0)
	}
	for ; !day.After(rangeEnd); day = day.AddDate(0, 1, 0) {
		for _, cs := range current {
			if !cs.Salary.ValidOn(day) {
				continue
			}
			out = append(out, domain.Booking{
				ID:        uuid.NewString(),
				Date:      day,
				Details:   "Lohn " + cs.EmployeeName,
				Amount:    cs.Salary.Amount,
				Direction: domain.Outgoing,
				Category:  domain.CategoryPayroll,
				SourceID:  cs.EmployeeID,
			})
		}
	}
	return out
}
