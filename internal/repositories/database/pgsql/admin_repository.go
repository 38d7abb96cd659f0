package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// resetTables lists the planner tables; loehne goes with mitarbeiter.
var resetTables = []string{"buchungen", "fixkosten", "loehne", "mitarbeiter", "simulationen"}

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(pool *pgxpool.Pool) portsrepo.AdminRepository {
	return &PgxAdminRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AdminRepository = (*PgxAdminRepository)(nil)

// ResetAll empties every planner table in one transaction.
func (r *PgxAdminRepository) ResetAll(ctx context.Context) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, table := range resetTables {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to reset table %s: %w", table, err)
		}
	}
	return r.Commit(ctx, tx)
}

// Ping checks store connectivity.
func (r *PgxAdminRepository) Ping(ctx context.Context) error {
	return r.Pool.Ping(ctx)
}
