package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/karibustays/karibu/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/karibustays/karibu/services/booking BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	GetBookingsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Booking, error)
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, req models.UpdateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
}
