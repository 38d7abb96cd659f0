package pgsql

import (
	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BookingRepo:    newPgxBookingRepository(dbPool),
		FixedCostRepo:  newPgxFixedCostRepository(dbPool),
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
		SimulationRepo: newPgxSimulationRepository(dbPool),
		AdminRepo:      newPgxAdminRepository(dbPool),
	}
}
