package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	"github.com/SscSPs/liq_planning_app/internal/models"
	"github.com/SscSPs/liq_planning_app/internal/utils/mapping"
	"github.com/SscSPs/liq_planning_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `booking_id, date, details, amount, direction, category, modified, source_id, nominal_date,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for the buchungen table.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryWithTx {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBookingRepository implements portsrepo.BookingRepositoryWithTx
var _ portsrepo.BookingRepositoryWithTx = (*PgxBookingRepository)(nil)

func scanBooking(row pgx.CollectableRow) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.BookingID,
		&b.Date,
		&b.Details,
		&b.Amount,
		&b.Direction,
		&b.Category,
		&b.Modified,
		&b.SourceID,
		&b.NominalDate,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	return b, err
}

func bookingWhere(filter domain.BookingFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.From != nil {
		w.add("date >= ?", domain.DateOnly(*filter.From))
	}
	if filter.To != nil {
		w.add("date <= ?", domain.DateOnly(*filter.To))
	}
	if filter.ModifiedOnly {
		w.addRaw("modified")
	}
	w.ownedBy(filter.OwnerID)
	return w
}

// FindBookingByID retrieves a booking by its id.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID, ownerID string) (*domain.Booking, error) {
	w := &whereBuilder{}
	w.add("booking_id = ?", bookingID)
	w.ownedBy(ownerID)

	rows, err := r.Pool.Query(ctx, "SELECT "+bookingColumns+" FROM buchungen"+w.String(), w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query booking %s: %w", bookingID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanBooking)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan booking %s: %w", bookingID, err)
	}
	b := mapping.ToDomainBooking(m)
	return &b, nil
}

// ListBookings retrieves all bookings matching filter in (date, booking_id) order.
func (r *PgxBookingRepository) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	w := bookingWhere(filter)
	query := "SELECT " + bookingColumns + " FROM buchungen" + w.String() + " ORDER BY date, booking_id"

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	modelBookings, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}
	return mapping.ToDomainBookingSlice(modelBookings), nil
}

// ListBookingsPage retrieves one keyset page. It fetches limit+1 rows to know
// whether another page follows.
func (r *PgxBookingRepository) ListBookingsPage(ctx context.Context, filter domain.BookingFilter, after *pagination.Cursor, limit int) ([]domain.Booking, *pagination.Cursor, error) {
	w := bookingWhere(filter)
	if after != nil {
		w.args = append(w.args, after.Date, after.ID)
		n := len(w.args)
		w.addRaw(fmt.Sprintf("(date, booking_id) > ($%d, $%d)", n-1, n))
	}
	query := "SELECT " + bookingColumns + " FROM buchungen" + w.String() +
		" ORDER BY date, booking_id LIMIT " + w.next()
	args := append(w.args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query booking page: %w", err)
	}
	defer rows.Close()

	modelBookings, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan booking page: %w", err)
	}

	var next *pagination.Cursor
	if len(modelBookings) > limit {
		modelBookings = modelBookings[:limit]
		last := modelBookings[limit-1]
		next = &pagination.Cursor{Date: last.Date, ID: last.BookingID}
	}
	return mapping.ToDomainBookingSlice(modelBookings), next, nil
}

// SaveBookings upserts all bookings in one transaction using a pgx batch.
func (r *PgxBookingRepository) SaveBookings(ctx context.Context, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO buchungen (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (booking_id) DO UPDATE SET
			date = EXCLUDED.date,
			details = EXCLUDED.details,
			amount = EXCLUDED.amount,
			direction = EXCLUDED.direction,
			category = EXCLUDED.category,
			modified = EXCLUDED.modified,
			source_id = EXCLUDED.source_id,
			nominal_date = EXCLUDED.nominal_date,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	batch := &pgx.Batch{}
	for _, b := range bookings {
		m := mapping.ToModelBooking(b)
		batch.Queue(query,
			m.BookingID,
			m.Date,
			m.Details,
			m.Amount,
			m.Direction,
			m.Category,
			m.Modified,
			m.SourceID,
			m.NominalDate,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return translateWriteError(err, fmt.Sprintf("failed to save %d bookings", len(bookings)))
	}
	return r.Commit(ctx, tx)
}

// UpdateBooking overwrites the editable fields of a booking.
func (r *PgxBookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking) error {
	m := mapping.ToModelBooking(booking)
	query := `
		UPDATE buchungen
		SET date = $2, details = $3, amount = $4, direction = $5, modified = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE booking_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BookingID,
		m.Date,
		m.Details,
		m.Amount,
		m.Direction,
		m.Modified,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "failed to update booking "+m.BookingID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBooking removes a booking.
func (r *PgxBookingRepository) DeleteBooking(ctx context.Context, bookingID, ownerID string) error {
	w := &whereBuilder{}
	w.add("booking_id = ?", bookingID)
	w.ownedBy(ownerID)

	tag, err := r.Pool.Exec(ctx, "DELETE FROM buchungen"+w.String(), w.args...)
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
