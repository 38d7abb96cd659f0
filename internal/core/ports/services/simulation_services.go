package services

import (
	"context"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/dto"
)

// SimulationReaderSvc defines read operations for simulations
type SimulationReaderSvc interface {
	ListSimulations(ctx context.Context, userID string) ([]domain.Simulation, error)
}

// SimulationWriterSvc defines write operations for simulations
type SimulationWriterSvc interface {
	CreateSimulation(ctx context.Context, req dto.SimulationRequest, userID string) (*domain.Simulation, error)
	UpdateSimulation(ctx context.Context, simulationID string, req dto.SimulationRequest, userID string) (*domain.Simulation, error)
	DeleteSimulation(ctx context.Context, simulationID, userID string) error

	// ReplaceSimulations swaps the whole scenario in one transaction.
	ReplaceSimulations(ctx context.Context, req dto.ReplaceSimulationsRequest, userID string) ([]domain.Simulation, error)
}

// SimulationSvcFacade combines all simulation service interfaces
type SimulationSvcFacade interface {
	SimulationReaderSvc
	SimulationWriterSvc
}
