package dto

import (
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FixedCostRequest defines the data needed to create or update a fixed cost.
type FixedCostRequest struct {
	Name   string          `json:"name" binding:"required,max=200"`
	Amount decimal.Decimal `json:"amount"`
	Rhythm string          `json:"rhythm" binding:"required,rhythm"`
	Start  string          `json:"start" binding:"required"`
	End    *string         `json:"end"`
}

// FixedCostResponse defines the data returned for a fixed cost.
type FixedCostResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Amount            decimal.Decimal `json:"amount"`
	Rhythm            string          `json:"rhythm"`
	Start             string          `json:"start"`
	End               *string         `json:"end,omitempty"`
	MonthlyEquivalent decimal.Decimal `json:"monthlyEquivalent"`
}

// MonthlyTotalResponse is the monthly cost equivalent of all active fixed costs.
type MonthlyTotalResponse struct {
	AsOf  string          `json:"asOf"`
	Total decimal.Decimal `json:"total"`
}

// ToFixedCostResponse converts a domain.FixedCost to FixedCostResponse DTO
func ToFixedCostResponse(f *domain.FixedCost) FixedCostResponse {
	return FixedCostResponse{
		ID:                f.ID,
		Name:              f.Name,
		Amount:            f.Amount,
		Rhythm:            string(f.Rhythm),
		Start:             isoDate(f.Start),
		End:               isoDatePtr(f.End),
		MonthlyEquivalent: f.MonthlyEquivalent().Round(2),
	}
}

// ToFixedCostResponses converts a slice of domain.FixedCost to []FixedCostResponse.
func ToFixedCostResponses(costs []domain.FixedCost) []FixedCostResponse {
	res := make([]FixedCostResponse, len(costs))
	for i := range costs {
		res[i] = ToFixedCostResponse(&costs[i])
	}
	return res
}
