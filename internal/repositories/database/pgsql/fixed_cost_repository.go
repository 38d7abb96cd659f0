package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	"github.com/SscSPs/liq_planning_app/internal/models"
	"github.com/SscSPs/liq_planning_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fixedCostColumns = `fixed_cost_id, name, amount, rhythm, start_date, end_date,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxFixedCostRepository struct {
	BaseRepository
}

// newPgxFixedCostRepository creates a new repository for the fixkosten table.
func newPgxFixedCostRepository(pool *pgxpool.Pool) portsrepo.FixedCostRepositoryWithTx {
	return &PgxFixedCostRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FixedCostRepositoryWithTx = (*PgxFixedCostRepository)(nil)

func scanFixedCost(row pgx.CollectableRow) (models.FixedCost, error) {
	var f models.FixedCost
	err := row.Scan(
		&f.FixedCostID,
		&f.Name,
		&f.Amount,
		&f.Rhythm,
		&f.StartDate,
		&f.EndDate,
		&f.CreatedAt,
		&f.CreatedBy,
		&f.LastUpdatedAt,
		&f.LastUpdatedBy,
	)
	return f, err
}

// FindFixedCostByID retrieves a fixed cost by its id.
func (r *PgxFixedCostRepository) FindFixedCostByID(ctx context.Context, fixedCostID, ownerID string) (*domain.FixedCost, error) {
	w := &whereBuilder{}
	w.add("fixed_cost_id = ?", fixedCostID)
	w.ownedBy(ownerID)

	rows, err := r.Pool.Query(ctx, "SELECT "+fixedCostColumns+" FROM fixkosten"+w.String(), w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed cost %s: %w", fixedCostID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanFixedCost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan fixed cost %s: %w", fixedCostID, err)
	}
	f := mapping.ToDomainFixedCost(m)
	return &f, nil
}

// ListFixedCosts retrieves all fixed costs ordered by start date and name.
func (r *PgxFixedCostRepository) ListFixedCosts(ctx context.Context, ownerID string) ([]domain.FixedCost, error) {
	w := &whereBuilder{}
	w.ownedBy(ownerID)

	rows, err := r.Pool.Query(ctx, "SELECT "+fixedCostColumns+" FROM fixkosten"+w.String()+" ORDER BY start_date, name", w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed costs: %w", err)
	}
	defer rows.Close()

	modelCosts, err := pgx.CollectRows(rows, scanFixedCost)
	if err != nil {
		return nil, fmt.Errorf("failed to scan fixed costs: %w", err)
	}
	return mapping.ToDomainFixedCostSlice(modelCosts), nil
}

// SaveFixedCost inserts or updates a fixed cost.
func (r *PgxFixedCostRepository) SaveFixedCost(ctx context.Context, cost domain.FixedCost) error {
	m := mapping.ToModelFixedCost(cost)
	query := `
		INSERT INTO fixkosten (` + fixedCostColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (fixed_cost_id) DO UPDATE SET
			name = EXCLUDED.name,
			amount = EXCLUDED.amount,
			rhythm = EXCLUDED.rhythm,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FixedCostID,
		m.Name,
		m.Amount,
		m.Rhythm,
		m.StartDate,
		m.EndDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "failed to save fixed cost "+m.FixedCostID)
	}
	return nil
}

// DeleteFixedCost removes a fixed cost.
func (r *PgxFixedCostRepository) DeleteFixedCost(ctx context.Context, fixedCostID, ownerID string) error {
	w := &whereBuilder{}
	w.add("fixed_cost_id = ?", fixedCostID)
	w.ownedBy(ownerID)

	tag, err := r.Pool.Exec(ctx, "DELETE FROM fixkosten"+w.String(), w.args...)
	if err != nil {
		return fmt.Errorf("failed to delete fixed cost %s: %w", fixedCostID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
