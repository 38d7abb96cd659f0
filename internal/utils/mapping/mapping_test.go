package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainBooking_DefaultsCategory(t *testing.T) {
	d := ToDomainBooking(models.Booking{
		BookingID: "b1",
		Date:      time.Date(2025, 2, 3, 14, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(5),
		Direction: "Incoming",
	})
	assert.Equal(t, domain.CategoryStandard, d.Category)
	assert.Equal(t, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), d.Date)
	assert.Empty(t, d.SourceID)
}

func TestToModelBooking_SourceID(t *testing.T) {
	m := ToModelBooking(domain.Booking{ID: "b1", SourceID: "fc1"})
	if assert.NotNil(t, m.SourceID) {
		assert.Equal(t, "fc1", *m.SourceID)
	}
	assert.Nil(t, ToModelBooking(domain.Booking{ID: "b2"}).SourceID)
}

func TestEmployeeMapping(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	emp := domain.Employee{
		ID:   "e1",
		Name: "Anna",
		Salaries: []domain.Salary{
			{ID: "s1", Amount: decimal.NewFromInt(6000), Start: start},
		},
	}
	row, salaries := ToModelEmployee(emp)
	assert.Equal(t, "e1", row.EmployeeID)
	if assert.Len(t, salaries, 1) {
		assert.Equal(t, "e1", salaries[0].EmployeeID)
	}

	back := ToDomainEmployee(row, salaries)
	assert.Equal(t, emp.Name, back.Name)
	assert.Equal(t, "e1", back.Salaries[0].EmployeeID)
	assert.True(t, back.Salaries[0].Amount.Equal(decimal.NewFromInt(6000)))
}
