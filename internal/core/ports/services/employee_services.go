package services

import (
	"context"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	ListEmployees(ctx context.Context, userID string) ([]domain.Employee, error)

	// CurrentSalaries resolves the salary in effect today for every employee.
	CurrentSalaries(ctx context.Context, userID string) ([]domain.CurrentSalary, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, req dto.EmployeeRequest, userID string) (*domain.Employee, error)

	// UpdateEmployee replaces name and salary history.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.EmployeeRequest, userID string) (*domain.Employee, error)

	DeleteEmployee(ctx context.Context, employeeID, userID string) error
}

// EmployeeSvcFacade combines all employee service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
