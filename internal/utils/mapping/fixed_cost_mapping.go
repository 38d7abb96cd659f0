package mapping

import (
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/models"
)

// ToModelFixedCost converts a domain FixedCost to a model FixedCost
func ToModelFixedCost(d domain.FixedCost) models.FixedCost {
	return models.FixedCost{
		FixedCostID: d.ID,
		Name:        d.Name,
		Amount:      d.Amount,
		Rhythm:      string(d.Rhythm),
		StartDate:   domain.DateOnly(d.Start),
		EndDate:     d.End,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFixedCost converts a model FixedCost to a domain FixedCost
func ToDomainFixedCost(m models.FixedCost) domain.FixedCost {
	return domain.FixedCost{
		ID:          m.FixedCostID,
		Name:        m.Name,
		Amount:      m.Amount,
		Rhythm:      domain.Rhythm(m.Rhythm),
		Start:       domain.DateOnly(m.StartDate),
		End:         m.EndDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFixedCostSlice converts a slice of model FixedCosts to a slice of domain FixedCosts
func ToDomainFixedCostSlice(ms []models.FixedCost) []domain.FixedCost {
	ds := make([]domain.FixedCost, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFixedCost(m)
	}
	return ds
}
