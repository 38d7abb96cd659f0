package repositories

import (
	"context"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
)

// SimulationReader defines read operations for simulated bookings
type SimulationReader interface {
	FindSimulationByID(ctx context.Context, simulationID, ownerID string) (*domain.Simulation, error)
	ListSimulations(ctx context.Context, ownerID string) ([]domain.Simulation, error)
}

// SimulationWriter defines write operations for simulated bookings
type SimulationWriter interface {
	SaveSimulation(ctx context.Context, simulation domain.Simulation) error
	DeleteSimulation(ctx context.Context, simulationID, ownerID string) error

	// ReplaceSimulations deletes the owner's simulations and inserts the given set
	// in one transaction.
	ReplaceSimulations(ctx context.Context, ownerID string, simulations []domain.Simulation) error
}

// SimulationRepositoryFacade combines all simulation repository interfaces
type SimulationRepositoryFacade interface {
	SimulationReader
	SimulationWriter
}

// SimulationRepositoryWithTx extends SimulationRepositoryFacade with transaction capabilities
type SimulationRepositoryWithTx interface {
	SimulationRepositoryFacade
	TransactionManager
}
