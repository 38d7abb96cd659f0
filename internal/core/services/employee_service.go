package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/core/planning"
	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/SscSPs/liq_planning_app/internal/utils/chf"
	"github.com/google/uuid"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates the service managing employees and their salary history
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, options ...ServiceOption) portssvc.EmployeeSvcFacade {
	return &employeeService{
		BaseService:  newBaseService(options...),
		employeeRepo: repo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) ListEmployees(ctx context.Context, userID string) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, s.owner(userID))
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) CurrentSalaries(ctx context.Context, userID string) ([]domain.CurrentSalary, error) {
	employees, err := s.ListEmployees(ctx, userID)
	if err != nil {
		return nil, err
	}
	return planning.ResolveCurrentSalaries(employees, s.today()), nil
}

// applyEmployeeRequest replaces name and salary history. Entries without an
// id are new and get one assigned.
func applyEmployeeRequest(e *domain.Employee, req dto.EmployeeRequest) error {
	salaries := make([]domain.Salary, 0, len(req.Salaries))
	for _, sr := range req.Salaries {
		start, err := chf.ParseDate(sr.Start)
		if err != nil {
			return err
		}
		end, err := parseOptionalDate(sr.End)
		if err != nil {
			return err
		}
		id := strings.TrimSpace(sr.ID)
		if id == "" {
			id = uuid.NewString()
		}
		salaries = append(salaries, domain.Salary{
			ID:         id,
			EmployeeID: e.ID,
			Amount:     sr.Amount,
			Start:      start,
			End:        end,
		})
	}
	e.Name = strings.TrimSpace(req.Name)
	e.Salaries = salaries
	return e.Validate()
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.EmployeeRequest, userID string) (*domain.Employee, error) {
	employee := domain.Employee{ID: uuid.NewString()}
	if err := applyEmployeeRequest(&employee, req); err != nil {
		return nil, err
	}
	employee.Touch(userID, s.now())

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to create employee")
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.ID), slog.Int("salaries", len(employee.Salaries)))
	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.EmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID, s.owner(userID))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	if err := applyEmployeeRequest(employee, req); err != nil {
		return nil, err
	}
	employee.Touch(userID, s.now())

	if err := s.employeeRepo.SaveEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID, userID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID, s.owner(userID)); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		}
		return err
	}
	return nil
}
