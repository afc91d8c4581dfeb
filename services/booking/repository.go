package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/karibustays/karibu/internal/pkg/models"
)

var (
	// ErrBookingNotFound is returned when no booking matches the lookup
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRoomUnavailable is returned when the requested date range overlaps
	// an existing pending or confirmed booking for the same room
	ErrRoomUnavailable = errors.New("room is not available for the requested dates")

	// ErrBookingCancelled is returned when a settled payment tries to
	// confirm a booking an administrator has already cancelled
	ErrBookingCancelled = errors.New("booking has been cancelled")
)

// BookingRepo defines the interface for booking data access operations
type BookingRepo interface {
	// CreateBooking inserts a pending booking. The room-availability check
	// runs inside the same transaction as the insert so concurrent creates
	// for the same room serialize.
	CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error)

	// HasConflict reports whether any pending or confirmed booking for the
	// room overlaps the half-open range [checkIn, checkOut).
	HasConflict(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)

	// GetBooking retrieves a booking by ID
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)

	// GetBookingsByUser retrieves bookings for a user, newest first
	GetBookingsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Booking, error)

	// ConfirmBooking promotes a booking to confirmed. Promoting an
	// already-confirmed booking is a no-op; a cancelled booking returns
	// ErrBookingCancelled.
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)

	// CancelBooking marks a booking cancelled
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)

	// UpdateBooking mutates dates and amount of an existing booking
	UpdateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error)

	// DeleteBooking removes a booking row
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
}
