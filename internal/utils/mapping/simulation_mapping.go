package mapping

import (
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/models"
)

// ToModelSimulation converts a domain Simulation to a model Simulation
func ToModelSimulation(d domain.Simulation) models.Simulation {
	return models.Simulation{
		SimulationID: d.ID,
		Date:         domain.DateOnly(d.Date),
		Details:      d.Details,
		Amount:       d.Amount,
		Direction:    string(d.Direction),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSimulation converts a model Simulation to a domain Simulation
func ToDomainSimulation(m models.Simulation) domain.Simulation {
	return domain.Simulation{
		ID:          m.SimulationID,
		Date:        domain.DateOnly(m.Date),
		Details:     m.Details,
		Amount:      m.Amount,
		Direction:   domain.Direction(m.Direction),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSimulationSlice converts a slice of model Simulations to a slice of domain Simulations
func ToDomainSimulationSlice(ms []models.Simulation) []domain.Simulation {
	ds := make([]domain.Simulation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSimulation(m)
	}
	return ds
}
