package mapping

import (
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/models"
)

// ToModelEmployee converts a domain Employee to its row and salary rows.
func ToModelEmployee(d domain.Employee) (models.Employee, []models.Salary) {
	salaries := make([]models.Salary, len(d.Salaries))
	for i, s := range d.Salaries {
		salaries[i] = models.Salary{
			SalaryID:   s.ID,
			EmployeeID: d.ID,
			Amount:     s.Amount,
			StartDate:  domain.DateOnly(s.Start),
			EndDate:    s.End,
		}
	}
	return models.Employee{
		EmployeeID:  d.ID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, salaries
}

// ToDomainEmployee assembles a domain Employee from its row and salary rows.
func ToDomainEmployee(m models.Employee, salaries []models.Salary) domain.Employee {
	d := domain.Employee{
		ID:          m.EmployeeID,
		Name:        m.Name,
		Salaries:    make([]domain.Salary, 0, len(salaries)),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	for _, s := range salaries {
		d.Salaries = append(d.Salaries, ToDomainSalary(s))
	}
	return d
}

// ToDomainSalary converts a model Salary to a domain Salary
func ToDomainSalary(m models.Salary) domain.Salary {
	return domain.Salary{
		ID:         m.SalaryID,
		EmployeeID: m.EmployeeID,
		Amount:     m.Amount,
		Start:      domain.DateOnly(m.StartDate),
		End:        m.EndDate,
	}
}
