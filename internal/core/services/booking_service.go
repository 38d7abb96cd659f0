package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/SscSPs/liq_planning_app/internal/utils/chf"
	"github.com/SscSPs/liq_planning_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

type bookingService struct {
	BaseService
	bookingRepo portsrepo.BookingRepositoryFacade
}

// NewBookingService creates the service managing stored bookings
func NewBookingService(repo portsrepo.BookingRepositoryFacade, options ...ServiceOption) portssvc.BookingSvcFacade {
	return &bookingService{
		BaseService: newBaseService(options...),
		bookingRepo: repo,
	}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

func (s *bookingService) GetBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID, s.owner(userID))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get booking", slog.String("booking_id", bookingID))
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, params dto.ListBookingsParams, userID string) ([]domain.Booking, string, error) {
	filter := domain.BookingFilter{ModifiedOnly: params.ModifiedOnly, OwnerID: s.owner(userID)}
	var err error
	if filter.From, err = parseOptionalDate(&params.From); err != nil {
		return nil, "", err
	}
	if filter.To, err = parseOptionalDate(&params.To); err != nil {
		return nil, "", err
	}

	var after *pagination.Cursor
	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = &cursor
	}

	limit := pagination.ClampLimit(params.Limit, defaultPageSize, maxPageSize)
	bookings, next, err := s.bookingRepo.ListBookingsPage(ctx, filter, after, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings")
		return nil, "", err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	nextToken := ""
	if next != nil {
		nextToken = pagination.EncodeToken(*next)
	}
	return bookings, nextToken, nil
}

// applyBookingRequest copies the editable request fields onto b.
func applyBookingRequest(b *domain.Booking, req dto.BookingRequest) error {
	date, err := chf.ParseDate(req.Date)
	if err != nil {
		return err
	}
	if err := requireNonNegative("booking amount", req.Amount); err != nil {
		return err
	}
	b.Date = date
	b.Details = strings.TrimSpace(req.Details)
	b.Amount = req.Amount
	b.Direction = domain.Direction(req.Direction)
	return b.Validate()
}

func (s *bookingService) CreateBooking(ctx context.Context, req dto.BookingRequest, userID string) (*domain.Booking, error) {
	booking := domain.Booking{
		ID:       uuid.NewString(),
		Category: domain.CategoryStandard,
	}
	if err := applyBookingRequest(&booking, req); err != nil {
		return nil, err
	}
	booking.Touch(userID, s.now())

	if err := s.bookingRepo.SaveBookings(ctx, []domain.Booking{booking}); err != nil {
		s.LogError(ctx, err, "Failed to create booking")
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	s.LogInfo(ctx, "Booking created", slog.String("booking_id", booking.ID))
	return &booking, nil
}

// UpdateBooking flags the booking as modified so later imports leave it alone.
func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req dto.BookingRequest, userID string) (*domain.Booking, error) {
	booking, err := s.GetBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	if err := applyBookingRequest(booking, req); err != nil {
		return nil, err
	}
	booking.Modified = true
	booking.Touch(userID, s.now())

	if err := s.bookingRepo.UpdateBooking(ctx, *booking); err != nil {
		s.LogError(ctx, err, "Failed to update booking", slog.String("booking_id", bookingID))
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) BatchUpdateBookings(ctx context.Context, req dto.BatchUpdateBookingsRequest, userID string) dto.BatchUpdateBookingsResponse {
	res := dto.BatchUpdateBookingsResponse{Results: make([]dto.BatchUpdateResult, 0, len(req.Items))}
	for _, item := range req.Items {
		result := dto.BatchUpdateResult{ID: item.ID}
		if _, err := s.UpdateBooking(ctx, item.ID, item.BookingRequest, userID); err != nil {
			result.Error = err.Error()
			res.Failed++
		} else {
			res.Updated++
		}
		res.Results = append(res.Results, result)
	}
	s.LogInfo(ctx, "Batch booking update finished", slog.Int("updated", res.Updated), slog.Int("failed", res.Failed))
	return res
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID, userID string) error {
	if err := s.bookingRepo.DeleteBooking(ctx, bookingID, s.owner(userID)); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete booking", slog.String("booking_id", bookingID))
		}
		return err
	}
	return nil
}
