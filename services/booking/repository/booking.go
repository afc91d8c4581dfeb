package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/services/booking"
)

// BookingRepo implements the booking repository interface
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `
	booking_id, user_id, hotel_id, room_id,
	check_in_date, check_out_date, total_amount, status,
	created_at, updated_at
`

// roomHasConflict runs the half-open overlap test against pending and
// confirmed bookings: an existing range [a,b) conflicts with a candidate
// [c,d) iff a < d AND b > c. The checkout day itself is free.
func roomHasConflict(ctx context.Context, q sqlx.ExtContext, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			AND status IN ($2, $3)
			AND check_in_date < $5
			AND check_out_date > $4
		)
	`

	var exists bool
	err := q.QueryRowxContext(ctx, query,
		roomID,
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		checkIn,
		checkOut,
	).Scan(&exists)
	if err != nil {
		// A store failure must never read as "no conflict"
		return false, fmt.Errorf("failed to check room availability: %w", err)
	}

	return exists, nil
}

// HasConflict reports whether any pending or confirmed booking for the room
// overlaps [checkIn, checkOut)
func (r *BookingRepo) HasConflict(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	return roomHasConflict(ctx, r.db, roomID, checkIn, checkOut)
}

// CreateBooking inserts a new pending booking. The conflict check and the
// insert run inside one transaction, serialized per room by an advisory
// transaction lock, so two concurrent creates for overlapping dates cannot
// both pass the check.
func (r *BookingRepo) CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Serialize concurrent creates for the same room
	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`,
		b.RoomID,
	); err != nil {
		return nil, fmt.Errorf("failed to acquire room lock: %w", err)
	}

	conflict, err := roomHasConflict(ctx, tx, b.RoomID, b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, booking.ErrRoomUnavailable
	}

	insertQuery := `
		INSERT INTO bookings (
			booking_id, user_id, hotel_id, room_id,
			check_in_date, check_out_date, total_amount, status,
			created_at, updated_at
		) VALUES (
			:booking_id, :user_id, :hotel_id, :room_id,
			:check_in_date, :check_out_date, :total_amount, :status,
			:created_at, :updated_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, insertQuery, b); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return b, nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	var b models.Booking
	err := r.db.GetContext(ctx, &b, query, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &b, nil
}

// GetBookingsByUser retrieves bookings for a user, newest first
func (r *BookingRepo) GetBookingsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	bookings := []*models.Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// ConfirmBooking promotes a booking to confirmed. The guarded update makes
// the promotion idempotent: re-confirming an already-confirmed booking
// matches the same row and changes nothing observable.
func (r *BookingRepo) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE booking_id = $3 AND status IN ($1, $4)
		RETURNING ` + bookingColumns

	var b models.Booking
	err := r.db.QueryRowxContext(ctx, query,
		models.BookingStatusConfirmed,
		time.Now(),
		bookingID,
		models.BookingStatusPending,
	).StructScan(&b)
	if err == nil {
		return &b, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	// No row matched: either the booking does not exist or it was cancelled
	existing, getErr := r.GetBooking(ctx, bookingID)
	if getErr != nil {
		return nil, getErr
	}
	if existing.Status == models.BookingStatusCancelled {
		return nil, booking.ErrBookingCancelled
	}

	return nil, fmt.Errorf("failed to confirm booking %s in status %s", bookingID, existing.Status)
}

// CancelBooking marks a booking cancelled
func (r *BookingRepo) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE booking_id = $3
		RETURNING ` + bookingColumns

	var b models.Booking
	err := r.db.QueryRowxContext(ctx, query,
		models.BookingStatusCancelled,
		time.Now(),
		bookingID,
	).StructScan(&b)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	return &b, nil
}

// UpdateBooking mutates dates and amount of an existing booking
func (r *BookingRepo) UpdateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET check_in_date = $1, check_out_date = $2, total_amount = $3, updated_at = $4
		WHERE booking_id = $5
		RETURNING ` + bookingColumns

	var updated models.Booking
	err := r.db.QueryRowxContext(ctx, query,
		b.CheckInDate,
		b.CheckOutDate,
		b.TotalAmount,
		time.Now(),
		b.BookingID,
	).StructScan(&updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return &updated, nil
}

// DeleteBooking removes a booking row
func (r *BookingRepo) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE booking_id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return booking.ErrBookingNotFound
	}

	return nil
}
