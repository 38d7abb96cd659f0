package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a row of the mitarbeiter table.
type Employee struct {
	EmployeeID string `db:"employee_id"`
	Name       string `db:"name"`
	AuditFields
}

// Salary is a row of the loehne table.
type Salary struct {
	SalaryID   string          `db:"salary_id"`
	EmployeeID string          `db:"employee_id"`
	Amount     decimal.Decimal `db:"amount"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    *time.Time      `db:"end_date"`
}
