package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestBooking_SignedAmount(t *testing.T) {
	tests := []struct {
		name    string
		booking domain.Booking
		want    decimal.Decimal
	}{
		{
			name:    "outgoing is negative",
			booking: domain.Booking{Amount: decimal.NewFromInt(100), Direction: domain.Outgoing},
			want:    decimal.NewFromInt(-100),
		},
		{
			name:    "incoming is positive",
			booking: domain.Booking{Amount: decimal.NewFromInt(300), Direction: domain.Incoming},
			want:    decimal.NewFromInt(300),
		},
		{
			name:    "stray negative magnitude uses abs",
			booking: domain.Booking{Amount: decimal.NewFromInt(-40), Direction: domain.Incoming},
			want:    decimal.NewFromInt(40),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.booking.SignedAmount()), "got %s", tt.booking.SignedAmount())
		})
	}
}

func TestBooking_Validate(t *testing.T) {
	valid := domain.Booking{
		Date:      date(2025, 1, 2),
		Details:   "Acme AG",
		Amount:    decimal.NewFromInt(10),
		Direction: domain.Outgoing,
	}
	require.NoError(t, valid.Validate())

	negative := valid
	negative.Amount = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negative.Validate(), apperrors.ErrValidation)

	noDirection := valid
	noDirection.Direction = "Sideways"
	assert.ErrorIs(t, noDirection.Validate(), apperrors.ErrValidation)
}

func TestFixedCost_Validate(t *testing.T) {
	cost := domain.FixedCost{
		Name:   "Miete",
		Amount: decimal.NewFromInt(2000),
		Rhythm: domain.RhythmMonthly,
		Start:  date(2025, 1, 1),
	}
	require.NoError(t, cost.Validate())

	cost.End = datePtr(2025, 1, 1)
	assert.ErrorIs(t, cost.Validate(), apperrors.ErrValidation, "end equal to start must be rejected")

	cost.End = datePtr(2025, 6, 30)
	assert.NoError(t, cost.Validate())

	cost.Rhythm = "wöchentlich"
	assert.ErrorIs(t, cost.Validate(), apperrors.ErrValidation)
}

func TestFixedCost_Stop(t *testing.T) {
	cost := domain.FixedCost{Name: "Leasing", Rhythm: domain.RhythmQuarterly, Start: date(2024, 3, 1)}

	require.NoError(t, cost.Stop(time.Date(2025, 5, 14, 16, 30, 0, 0, time.UTC)))
	require.NotNil(t, cost.End)
	assert.Equal(t, date(2025, 5, 14), *cost.End)

	early := domain.FixedCost{Name: "Leasing", Rhythm: domain.RhythmQuarterly, Start: date(2025, 6, 1)}
	assert.ErrorIs(t, early.Stop(date(2025, 5, 14)), apperrors.ErrValidation)
}

func TestFixedCost_MonthlyEquivalent(t *testing.T) {
	tests := []struct {
		rhythm domain.Rhythm
		amount int64
		want   string
	}{
		{domain.RhythmMonthly, 2000, "2000"},
		{domain.RhythmQuarterly, 300, "100"},
		{domain.RhythmSemiAnnual, 600, "100"},
		{domain.RhythmAnnual, 1200, "100"},
		{"unbekannt", 1200, "0"},
	}
	for _, tt := range tests {
		t.Run(string(tt.rhythm), func(t *testing.T) {
			cost := domain.FixedCost{Amount: decimal.NewFromInt(tt.amount), Rhythm: tt.rhythm}
			assert.Equal(t, tt.want, cost.MonthlyEquivalent().String())
		})
	}
}

func TestEmployee_CurrentSalary(t *testing.T) {
	emp := domain.Employee{
		ID:   "e1",
		Name: "Anna",
		Salaries: []domain.Salary{
			{ID: "s1", Amount: decimal.NewFromInt(5000), Start: date(2023, 1, 1), End: datePtr(2024, 12, 31)},
			{ID: "s3", Amount: decimal.NewFromInt(6000), Start: date(2026, 1, 1)},
			{ID: "s2", Amount: decimal.NewFromInt(5500), Start: date(2025, 1, 1)},
		},
	}

	s, ok := emp.CurrentSalary(date(2025, 6, 1))
	require.True(t, ok)
	assert.Equal(t, "s2", s.ID, "latest start valid on the day wins")

	s, ok = emp.CurrentSalary(date(2024, 12, 31))
	require.True(t, ok)
	assert.Equal(t, "s1", s.ID, "end date is inclusive")

	_, ok = emp.CurrentSalary(date(2022, 6, 1))
	assert.False(t, ok)
}

func TestSimulation_ToBooking(t *testing.T) {
	sim := domain.Simulation{
		ID:        "sim-1",
		Date:      date(2025, 4, 1),
		Details:   "Neue Maschine",
		Amount:    decimal.NewFromInt(25000),
		Direction: domain.Outgoing,
	}
	b := sim.ToBooking()
	assert.Equal(t, domain.CategorySimulation, b.Category)
	assert.False(t, b.Modified)
	assert.Equal(t, sim.ID, b.ID)
}
