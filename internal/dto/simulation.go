package dto

import (
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SimulationRequest defines a hypothetical booking.
type SimulationRequest struct {
	Date      string          `json:"date" binding:"required"`
	Details   string          `json:"details" binding:"required,max=500"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction" binding:"required,direction"`
}

// ReplaceSimulationsRequest replaces the whole scenario. An empty list clears it.
type ReplaceSimulationsRequest struct {
	Items []SimulationRequest `json:"items" binding:"max=1000,dive"`
}

// SimulationResponse defines the data returned for a simulation.
type SimulationResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Details   string          `json:"details"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction"`
}

// ToSimulationResponse converts a domain.Simulation to SimulationResponse DTO
func ToSimulationResponse(s *domain.Simulation) SimulationResponse {
	return SimulationResponse{
		ID:        s.ID,
		Date:      isoDate(s.Date),
		Details:   s.Details,
		Amount:    s.Amount,
		Direction: string(s.Direction),
	}
}

// ToSimulationResponses converts a slice of domain.Simulation to []SimulationResponse.
func ToSimulationResponses(sims []domain.Simulation) []SimulationResponse {
	res := make([]SimulationResponse, len(sims))
	for i := range sims {
		res[i] = ToSimulationResponse(&sims[i])
	}
	return res
}
