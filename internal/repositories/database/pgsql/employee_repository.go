package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	"github.com/SscSPs/liq_planning_app/internal/models"
	"github.com/SscSPs/liq_planning_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for mitarbeiter and loehne.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryWithTx {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeRepositoryWithTx = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.CollectableRow) (models.Employee, error) {
	var e models.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.Name,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

func scanSalary(row pgx.CollectableRow) (models.Salary, error) {
	var s models.Salary
	err := row.Scan(&s.SalaryID, &s.EmployeeID, &s.Amount, &s.StartDate, &s.EndDate)
	return s, err
}

// FindEmployeeByID retrieves an employee with its salary history.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID, ownerID string) (*domain.Employee, error) {
	employees, err := r.listEmployees(ctx, employeeID, ownerID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &employees[0], nil
}

// ListEmployees retrieves all employees with their salary histories.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	return r.listEmployees(ctx, "", ownerID)
}

func (r *PgxEmployeeRepository) listEmployees(ctx context.Context, employeeID, ownerID string) ([]domain.Employee, error) {
	w := &whereBuilder{}
	if employeeID != "" {
		w.add("employee_id = ?", employeeID)
	}
	w.ownedBy(ownerID)

	rows, err := r.Pool.Query(ctx, `
		SELECT employee_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM mitarbeiter`+w.String()+` ORDER BY name, employee_id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()
	modelEmployees, err := pgx.CollectRows(rows, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	if len(modelEmployees) == 0 {
		return []domain.Employee{}, nil
	}

	ids := make([]string, len(modelEmployees))
	for i, e := range modelEmployees {
		ids[i] = e.EmployeeID
	}
	salaryRows, err := r.Pool.Query(ctx, `
		SELECT salary_id, employee_id, amount, start_date, end_date
		FROM loehne
		WHERE employee_id = ANY($1)
		ORDER BY employee_id, start_date`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries: %w", err)
	}
	defer salaryRows.Close()
	modelSalaries, err := pgx.CollectRows(salaryRows, scanSalary)
	if err != nil {
		return nil, fmt.Errorf("failed to scan salaries: %w", err)
	}

	byEmployee := make(map[string][]models.Salary, len(modelEmployees))
	for _, s := range modelSalaries {
		byEmployee[s.EmployeeID] = append(byEmployee[s.EmployeeID], s)
	}
	employees := make([]domain.Employee, len(modelEmployees))
	for i, e := range modelEmployees {
		employees[i] = mapping.ToDomainEmployee(e, byEmployee[e.EmployeeID])
	}
	return employees, nil
}

// SaveEmployee upserts the employee and diffs its salary history in one
// transaction: salaries whose id is no longer listed are deleted, the rest
// are upserted.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m, salaries := mapping.ToModelEmployee(employee)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO mitarbeiter (employee_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id) DO UPDATE SET
			name = EXCLUDED.name,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`,
		m.EmployeeID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "failed to save employee "+m.EmployeeID)
	}

	keep := make([]string, len(salaries))
	for i, s := range salaries {
		keep[i] = s.SalaryID
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM loehne WHERE employee_id = $1 AND NOT (salary_id = ANY($2))`,
		m.EmployeeID, keep,
	); err != nil {
		return fmt.Errorf("failed to prune salaries of employee %s: %w", m.EmployeeID, err)
	}

	if len(salaries) > 0 {
		batch := &pgx.Batch{}
		for _, s := range salaries {
			batch.Queue(`
				INSERT INTO loehne (salary_id, employee_id, amount, start_date, end_date)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (salary_id) DO UPDATE SET
					amount = EXCLUDED.amount,
					start_date = EXCLUDED.start_date,
					end_date = EXCLUDED.end_date
				WHERE loehne.employee_id = EXCLUDED.employee_id;`,
				s.SalaryID, s.EmployeeID, s.Amount, s.StartDate, s.EndDate,
			)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return translateWriteError(err, "failed to save salaries of employee "+m.EmployeeID)
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteEmployee removes an employee; loehne rows cascade.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID, ownerID string) error {
	w := &whereBuilder{}
	w.add("employee_id = ?", employeeID)
	w.ownedBy(ownerID)

	tag, err := r.Pool.Exec(ctx, "DELETE FROM mitarbeiter"+w.String(), w.args...)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
