package repositories

import (
	"context"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/utils/pagination"
)

// BookingReader defines read operations for stored bookings
type BookingReader interface {
	// FindBookingByID retrieves a booking by its id. OwnerID scopes the lookup when set.
	FindBookingByID(ctx context.Context, bookingID, ownerID string) (*domain.Booking, error)

	// ListBookings retrieves all bookings matching the filter ordered by date.
	ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)

	// ListBookingsPage retrieves up to limit bookings after the cursor, ordered by (date, id).
	// It returns the cursor of the next page, or nil when there are no more rows.
	ListBookingsPage(ctx context.Context, filter domain.BookingFilter, after *pagination.Cursor, limit int) ([]domain.Booking, *pagination.Cursor, error)
}

// BookingWriter defines write operations for stored bookings
type BookingWriter interface {
	// SaveBookings upserts all bookings by id in a single transaction.
	SaveBookings(ctx context.Context, bookings []domain.Booking) error

	// UpdateBooking overwrites the editable fields of an existing booking.
	UpdateBooking(ctx context.Context, booking domain.Booking) error

	// DeleteBooking removes a booking.
	DeleteBooking(ctx context.Context, bookingID, ownerID string) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}

// BookingRepositoryWithTx extends BookingRepositoryFacade with transaction capabilities
type BookingRepositoryWithTx interface {
	BookingRepositoryFacade
	TransactionManager
}
