package services

import (
	"context"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/shopspring/decimal"
)

// FixedCostReaderSvc defines read operations for fixed costs
type FixedCostReaderSvc interface {
	ListFixedCosts(ctx context.Context, userID string) ([]domain.FixedCost, error)

	// MonthlyTotal sums the monthly equivalent of all costs active today.
	MonthlyTotal(ctx context.Context, userID string) (decimal.Decimal, error)
}

// FixedCostWriterSvc defines write operations for fixed costs
type FixedCostWriterSvc interface {
	CreateFixedCost(ctx context.Context, req dto.FixedCostRequest, userID string) (*domain.FixedCost, error)
	UpdateFixedCost(ctx context.Context, fixedCostID string, req dto.FixedCostRequest, userID string) (*domain.FixedCost, error)

	// StopFixedCost ends the cost today, keeping its history.
	StopFixedCost(ctx context.Context, fixedCostID, userID string) (*domain.FixedCost, error)

	DeleteFixedCost(ctx context.Context, fixedCostID, userID string) error
}

// FixedCostSvcFacade combines all fixed cost service interfaces
type FixedCostSvcFacade interface {
	FixedCostReaderSvc
	FixedCostWriterSvc
}
