package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/SscSPs/liq_planning_app/internal/utils/chf"
	"github.com/google/uuid"
)

type simulationService struct {
	BaseService
	simulationRepo portsrepo.SimulationRepositoryFacade
}

// NewSimulationService creates the service managing scenario bookings
func NewSimulationService(repo portsrepo.SimulationRepositoryFacade, options ...ServiceOption) portssvc.SimulationSvcFacade {
	return &simulationService{
		BaseService:    newBaseService(options...),
		simulationRepo: repo,
	}
}

var _ portssvc.SimulationSvcFacade = (*simulationService)(nil)

func (s *simulationService) ListSimulations(ctx context.Context, userID string) ([]domain.Simulation, error) {
	sims, err := s.simulationRepo.ListSimulations(ctx, s.owner(userID))
	if err != nil {
		s.LogError(ctx, err, "Failed to list simulations")
		return nil, err
	}
	if sims == nil {
		return []domain.Simulation{}, nil
	}
	return sims, nil
}

func applySimulationRequest(sim *domain.Simulation, req dto.SimulationRequest) error {
	date, err := chf.ParseDate(req.Date)
	if err != nil {
		return err
	}
	if err := requireNonNegative("simulation amount", req.Amount); err != nil {
		return err
	}
	sim.Date = date
	sim.Details = strings.TrimSpace(req.Details)
	sim.Amount = req.Amount
	sim.Direction = domain.Direction(req.Direction)
	return sim.Validate()
}

func (s *simulationService) CreateSimulation(ctx context.Context, req dto.SimulationRequest, userID string) (*domain.Simulation, error) {
	sim := domain.Simulation{ID: uuid.NewString()}
	if err := applySimulationRequest(&sim, req); err != nil {
		return nil, err
	}
	sim.Touch(userID, s.now())

	if err := s.simulationRepo.SaveSimulation(ctx, sim); err != nil {
		s.LogError(ctx, err, "Failed to create simulation")
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}
	return &sim, nil
}

func (s *simulationService) UpdateSimulation(ctx context.Context, simulationID string, req dto.SimulationRequest, userID string) (*domain.Simulation, error) {
	sim, err := s.simulationRepo.FindSimulationByID(ctx, simulationID, s.owner(userID))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get simulation", slog.String("simulation_id", simulationID))
		}
		return nil, err
	}
	if err := applySimulationRequest(sim, req); err != nil {
		return nil, err
	}
	sim.Touch(userID, s.now())

	if err := s.simulationRepo.SaveSimulation(ctx, *sim); err != nil {
		s.LogError(ctx, err, "Failed to update simulation", slog.String("simulation_id", simulationID))
		return nil, err
	}
	return sim, nil
}

func (s *simulationService) DeleteSimulation(ctx context.Context, simulationID, userID string) error {
	if err := s.simulationRepo.DeleteSimulation(ctx, simulationID, s.owner(userID)); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete simulation", slog.String("simulation_id", simulationID))
		}
		return err
	}
	return nil
}

// ReplaceSimulations validates every item before touching the store, so an
// invalid row leaves the existing scenario untouched.
func (s *simulationService) ReplaceSimulations(ctx context.Context, req dto.ReplaceSimulationsRequest, userID string) ([]domain.Simulation, error) {
	now := s.now()
	sims := make([]domain.Simulation, 0, len(req.Items))
	for i, item := range req.Items {
		sim := domain.Simulation{ID: uuid.NewString()}
		if err := applySimulationRequest(&sim, item); err != nil {
			return nil, fmt.Errorf("simulation %d: %w", i+1, err)
		}
		sim.Touch(userID, now)
		sims = append(sims, sim)
	}

	if err := s.simulationRepo.ReplaceSimulations(ctx, s.owner(userID), sims); err != nil {
		s.LogError(ctx, err, "Failed to replace simulations")
		return nil, err
	}
	s.LogInfo(ctx, "Simulations replaced", slog.Int("count", len(sims)))
	return sims, nil
}
