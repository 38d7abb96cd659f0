package repositories

import (
	"context"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
)

// EmployeeReader defines read operations for employees and their salary history
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee with its full salary history.
	FindEmployeeByID(ctx context.Context, employeeID, ownerID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees with their salary histories.
	ListEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employees
type EmployeeWriter interface {
	// SaveEmployee upserts the employee and replaces its salary history in one
	// transaction. Salaries no longer present are deleted.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// DeleteEmployee removes the employee and its salary history.
	DeleteEmployee(ctx context.Context, employeeID, ownerID string) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

// EmployeeRepositoryWithTx extends EmployeeRepositoryFacade with transaction capabilities
type EmployeeRepositoryWithTx interface {
	EmployeeRepositoryFacade
	TransactionManager
}
