package repositories

import (
	"context"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
)

// FixedCostReader defines read operations for fixed costs
type FixedCostReader interface {
	FindFixedCostByID(ctx context.Context, fixedCostID, ownerID string) (*domain.FixedCost, error)
	ListFixedCosts(ctx context.Context, ownerID string) ([]domain.FixedCost, error)
}

// FixedCostWriter defines write operations for fixed costs
type FixedCostWriter interface {
	// SaveFixedCost inserts or updates a fixed cost by id.
	SaveFixedCost(ctx context.Context, cost domain.FixedCost) error
	DeleteFixedCost(ctx context.Context, fixedCostID, ownerID string) error
}

// FixedCostRepositoryFacade combines all fixed cost repository interfaces
type FixedCostRepositoryFacade interface {
	FixedCostReader
	FixedCostWriter
}

// FixedCostRepositoryWithTx extends FixedCostRepositoryFacade with transaction capabilities
type FixedCostRepositoryWithTx interface {
	FixedCostRepositoryFacade
	TransactionManager
}
