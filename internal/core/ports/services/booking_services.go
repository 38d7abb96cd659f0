package services

import (
	"context"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/dto"
)

// BookingReaderSvc defines read operations for stored bookings
type BookingReaderSvc interface {
	// GetBooking retrieves one booking visible to the user.
	GetBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error)

	// ListBookings retrieves a page of bookings and the token of the next page.
	ListBookings(ctx context.Context, params dto.ListBookingsParams, userID string) ([]domain.Booking, string, error)
}

// BookingWriterSvc defines write operations for stored bookings
type BookingWriterSvc interface {
	// CreateBooking stores a manually entered booking.
	CreateBooking(ctx context.Context, req dto.BookingRequest, userID string) (*domain.Booking, error)

	// UpdateBooking edits a booking and flags it as modified.
	UpdateBooking(ctx context.Context, bookingID string, req dto.BookingRequest, userID string) (*domain.Booking, error)

	// BatchUpdateBookings edits several bookings, reporting the outcome per row.
	BatchUpdateBookings(ctx context.Context, req dto.BatchUpdateBookingsRequest, userID string) dto.BatchUpdateBookingsResponse

	DeleteBooking(ctx context.Context, bookingID, userID string) error
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
