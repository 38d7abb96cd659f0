package mapping

import (
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/models"
)

// ToModelBooking converts a domain Booking to a model Booking
func ToModelBooking(d domain.Booking) models.Booking {
	m := models.Booking{
		BookingID:   d.ID,
		Date:        domain.DateOnly(d.Date),
		Details:     d.Details,
		Amount:      d.Amount,
		Direction:   string(d.Direction),
		Category:    string(d.Category),
		Modified:    d.Modified,
		NominalDate: d.NominalDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.SourceID != "" {
		sourceID := d.SourceID
		m.SourceID = &sourceID
	}
	return m
}

// ToDomainBooking converts a model Booking to a domain Booking.
// A stored record without a category is treated as Standard.
func ToDomainBooking(m models.Booking) domain.Booking {
	d := domain.Booking{
		ID:          m.BookingID,
		Date:        domain.DateOnly(m.Date),
		Details:     m.Details,
		Amount:      m.Amount,
		Direction:   domain.Direction(m.Direction),
		Category:    domain.Category(m.Category),
		Modified:    m.Modified,
		NominalDate: m.NominalDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if d.Category == "" {
		d.Category = domain.CategoryStandard
	}
	if m.SourceID != nil {
		d.SourceID = *m.SourceID
	}
	return d
}

// ToDomainBookingSlice converts a slice of model Bookings to a slice of domain Bookings
func ToDomainBookingSlice(ms []models.Booking) []domain.Booking {
	ds := make([]domain.Booking, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBooking(m)
	}
	return ds
}
