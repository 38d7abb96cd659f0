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

const simulationColumns = `simulation_id, date, details, amount, direction,
		created_at, created_by, last_updated_at, last_updated_by`

const insertSimulation = `
	INSERT INTO simulationen (` + simulationColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (simulation_id) DO UPDATE SET
		date = EXCLUDED.date,
		details = EXCLUDED.details,
		amount = EXCLUDED.amount,
		direction = EXCLUDED.direction,
		last_updated_at = EXCLUDED.last_updated_at,
		last_updated_by = EXCLUDED.last_updated_by;
`

type PgxSimulationRepository struct {
	BaseRepository
}

// newPgxSimulationRepository creates a new repository for the simulationen table.
func newPgxSimulationRepository(pool *pgxpool.Pool) portsrepo.SimulationRepositoryWithTx {
	return &PgxSimulationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SimulationRepositoryWithTx = (*PgxSimulationRepository)(nil)

func scanSimulation(row pgx.CollectableRow) (models.Simulation, error) {
	var s models.Simulation
	err := row.Scan(
		&s.SimulationID,
		&s.Date,
		&s.Details,
		&s.Amount,
		&s.Direction,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func simulationArgs(m models.Simulation) []any {
	return []any{
		m.SimulationID,
		m.Date,
		m.Details,
		m.Amount,
		m.Direction,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// FindSimulationByID retrieves a simulation by its id.
func (r *PgxSimulationRepository) FindSimulationByID(ctx context.Context, simulationID, ownerID string) (*domain.Simulation, error) {
	w := &whereBuilder{}
	w.add("simulation_id = ?", simulationID)
	w.ownedBy(ownerID)

	rows, err := r.Pool.Query(ctx, "SELECT "+simulationColumns+" FROM simulationen"+w.String(), w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation %s: %w", simulationID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanSimulation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan simulation %s: %w", simulationID, err)
	}
	s := mapping.ToDomainSimulation(m)
	return &s, nil
}

// ListSimulations retrieves all simulations in date order.
func (r *PgxSimulationRepository) ListSimulations(ctx context.Context, ownerID string) ([]domain.Simulation, error) {
	w := &whereBuilder{}
	w.ownedBy(ownerID)

	rows, err := r.Pool.Query(ctx, "SELECT "+simulationColumns+" FROM simulationen"+w.String()+" ORDER BY date, simulation_id", w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulations: %w", err)
	}
	defer rows.Close()

	modelSims, err := pgx.CollectRows(rows, scanSimulation)
	if err != nil {
		return nil, fmt.Errorf("failed to scan simulations: %w", err)
	}
	return mapping.ToDomainSimulationSlice(modelSims), nil
}

// SaveSimulation inserts or updates one simulation.
func (r *PgxSimulationRepository) SaveSimulation(ctx context.Context, simulation domain.Simulation) error {
	m := mapping.ToModelSimulation(simulation)
	if _, err := r.Pool.Exec(ctx, insertSimulation, simulationArgs(m)...); err != nil {
		return translateWriteError(err, "failed to save simulation "+m.SimulationID)
	}
	return nil
}

// DeleteSimulation removes one simulation.
func (r *PgxSimulationRepository) DeleteSimulation(ctx context.Context, simulationID, ownerID string) error {
	w := &whereBuilder{}
	w.add("simulation_id = ?", simulationID)
	w.ownedBy(ownerID)

	tag, err := r.Pool.Exec(ctx, "DELETE FROM simulationen"+w.String(), w.args...)
	if err != nil {
		return fmt.Errorf("failed to delete simulation %s: %w", simulationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceSimulations deletes the owner's simulations and inserts the new set
// in one transaction. An empty ownerID replaces the shared scenario.
func (r *PgxSimulationRepository) ReplaceSimulations(ctx context.Context, ownerID string, simulations []domain.Simulation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	w := &whereBuilder{}
	w.ownedBy(ownerID)
	if _, err := tx.Exec(ctx, "DELETE FROM simulationen"+w.String(), w.args...); err != nil {
		return fmt.Errorf("failed to clear simulations: %w", err)
	}

	if len(simulations) > 0 {
		batch := &pgx.Batch{}
		for _, s := range simulations {
			batch.Queue(insertSimulation, simulationArgs(mapping.ToModelSimulation(s))...)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return translateWriteError(err, fmt.Sprintf("failed to insert %d simulations", len(simulations)))
		}
	}

	return r.Commit(ctx, tx)
}
