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
	"github.com/shopspring/decimal"
)

type fixedCostService struct {
	BaseService
	fixedCostRepo portsrepo.FixedCostRepositoryFacade
}

// NewFixedCostService creates the service managing recurring costs
func NewFixedCostService(repo portsrepo.FixedCostRepositoryFacade, options ...ServiceOption) portssvc.FixedCostSvcFacade {
	return &fixedCostService{
		BaseService:   newBaseService(options...),
		fixedCostRepo: repo,
	}
}

var _ portssvc.FixedCostSvcFacade = (*fixedCostService)(nil)

func (s *fixedCostService) ListFixedCosts(ctx context.Context, userID string) ([]domain.FixedCost, error) {
	costs, err := s.fixedCostRepo.ListFixedCosts(ctx, s.owner(userID))
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed costs")
		return nil, err
	}
	if costs == nil {
		return []domain.FixedCost{}, nil
	}
	return costs, nil
}

func (s *fixedCostService) MonthlyTotal(ctx context.Context, userID string) (decimal.Decimal, error) {
	costs, err := s.ListFixedCosts(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return planning.MonthlyFixedCostTotal(costs, s.today()).Round(2), nil
}

func applyFixedCostRequest(f *domain.FixedCost, req dto.FixedCostRequest) error {
	start, err := chf.ParseDate(req.Start)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate(req.End)
	if err != nil {
		return err
	}
	f.Name = strings.TrimSpace(req.Name)
	f.Amount = req.Amount
	f.Rhythm = domain.Rhythm(req.Rhythm)
	f.Start = start
	f.End = end
	return f.Validate()
}

func (s *fixedCostService) CreateFixedCost(ctx context.Context, req dto.FixedCostRequest, userID string) (*domain.FixedCost, error) {
	cost := domain.FixedCost{ID: uuid.NewString()}
	if err := applyFixedCostRequest(&cost, req); err != nil {
		return nil, err
	}
	cost.Touch(userID, s.now())

	if err := s.fixedCostRepo.SaveFixedCost(ctx, cost); err != nil {
		s.LogError(ctx, err, "Failed to create fixed cost")
		return nil, fmt.Errorf("failed to create fixed cost: %w", err)
	}
	s.LogInfo(ctx, "Fixed cost created", slog.String("fixed_cost_id", cost.ID), slog.String("rhythm", string(cost.Rhythm)))
	return &cost, nil
}

func (s *fixedCostService) find(ctx context.Context, fixedCostID, userID string) (*domain.FixedCost, error) {
	cost, err := s.fixedCostRepo.FindFixedCostByID(ctx, fixedCostID, s.owner(userID))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to get fixed cost", slog.String("fixed_cost_id", fixedCostID))
	}
	return cost, err
}

func (s *fixedCostService) UpdateFixedCost(ctx context.Context, fixedCostID string, req dto.FixedCostRequest, userID string) (*domain.FixedCost, error) {
	cost, err := s.find(ctx, fixedCostID, userID)
	if err != nil {
		return nil, err
	}
	if err := applyFixedCostRequest(cost, req); err != nil {
		return nil, err
	}
	cost.Touch(userID, s.now())

	if err := s.fixedCostRepo.SaveFixedCost(ctx, *cost); err != nil {
		s.LogError(ctx, err, "Failed to update fixed cost", slog.String("fixed_cost_id", fixedCostID))
		return nil, err
	}
	return cost, nil
}

func (s *fixedCostService) StopFixedCost(ctx context.Context, fixedCostID, userID string) (*domain.FixedCost, error) {
	cost, err := s.find(ctx, fixedCostID, userID)
	if err != nil {
		return nil, err
	}
	if err := cost.Stop(s.today()); err != nil {
		return nil, err
	}
	cost.Touch(userID, s.now())

	if err := s.fixedCostRepo.SaveFixedCost(ctx, *cost); err != nil {
		s.LogError(ctx, err, "Failed to stop fixed cost", slog.String("fixed_cost_id", fixedCostID))
		return nil, err
	}
	s.LogInfo(ctx, "Fixed cost stopped", slog.String("fixed_cost_id", fixedCostID), slog.Time("end", *cost.End))
	return cost, nil
}

func (s *fixedCostService) DeleteFixedCost(ctx context.Context, fixedCostID, userID string) error {
	if err := s.fixedCostRepo.DeleteFixedCost(ctx, fixedCostID, s.owner(userID)); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete fixed cost", slog.String("fixed_cost_id", fixedCostID))
		}
		return err
	}
	return nil
}
