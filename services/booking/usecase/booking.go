package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karibustays/karibu/internal/pkg/logger"
	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/services/booking"
)

const dateLayout = "2006-01-02"

// BookingUC implements the booking business logic
type BookingUC struct {
	cfg         *models.Config
	bookingRepo booking.BookingRepo
}

// NewBookingUC creates a new booking usecase
func NewBookingUC(
	cfg *models.Config,
	bookingRepo booking.BookingRepo,
) *BookingUC {
	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
	}
}

// CreateBooking validates the request and creates a pending booking
func (uc *BookingUC) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id: %w", err)
	}
	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid hotel_id: %w", err)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room_id: %w", err)
	}

	checkIn, checkOut, err := parseDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	if req.TotalAmount <= 0 {
		return nil, errors.New("total_amount must be positive")
	}

	b := &models.Booking{
		UserID:       userID,
		HotelID:      hotelID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  req.TotalAmount,
		Status:       models.BookingStatusPending,
	}

	created, err := uc.bookingRepo.CreateBooking(ctx, b)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Booking created",
		logger.String("booking_id", created.BookingID.String()),
		logger.String("room_id", created.RoomID.String()),
		logger.String("check_in", req.CheckInDate),
		logger.String("check_out", req.CheckOutDate))

	return created, nil
}

// GetBooking retrieves a booking by ID
func (uc *BookingUC) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	return uc.bookingRepo.GetBooking(ctx, bookingID)
}

// GetBookingsByUser retrieves bookings for a user with pagination
func (uc *BookingUC) GetBookingsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.bookingRepo.GetBookingsByUser(ctx, userID, limit, offset)
}

// CheckAvailability reports whether the room is free for [checkIn, checkOut)
func (uc *BookingUC) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, errors.New("check_out_date must be after check_in_date")
	}

	conflict, err := uc.bookingRepo.HasConflict(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}

	return !conflict, nil
}

// UpdateBooking applies a partial update to a booking's dates and amount
func (uc *BookingUC) UpdateBooking(ctx context.Context, bookingID uuid.UUID, req models.UpdateBookingRequest) (*models.Booking, error) {
	existing, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	checkIn := existing.CheckInDate
	checkOut := existing.CheckOutDate
	if req.CheckInDate != nil {
		checkIn, err = time.Parse(dateLayout, *req.CheckInDate)
		if err != nil {
			return nil, fmt.Errorf("invalid check_in_date: %w", err)
		}
	}
	if req.CheckOutDate != nil {
		checkOut, err = time.Parse(dateLayout, *req.CheckOutDate)
		if err != nil {
			return nil, fmt.Errorf("invalid check_out_date: %w", err)
		}
	}
	if !checkOut.After(checkIn) {
		return nil, errors.New("check_out_date must be after check_in_date")
	}

	existing.CheckInDate = checkIn
	existing.CheckOutDate = checkOut
	if req.TotalAmount != nil {
		if *req.TotalAmount <= 0 {
			return nil, errors.New("total_amount must be positive")
		}
		existing.TotalAmount = *req.TotalAmount
	}

	return uc.bookingRepo.UpdateBooking(ctx, existing)
}

// CancelBooking marks a booking cancelled
func (uc *BookingUC) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	cancelled, err := uc.bookingRepo.CancelBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Booking cancelled",
		logger.String("booking_id", bookingID.String()))

	return cancelled, nil
}

// DeleteBooking removes a booking
func (uc *BookingUC) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	return uc.bookingRepo.DeleteBooking(ctx, bookingID)
}

// parseDateRange parses YYYY-MM-DD stay dates and enforces ordering
func parseDateRange(inStr, outStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(dateLayout, inStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check_in_date: %w", err)
	}
	checkOut, err := time.Parse(dateLayout, outStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check_out_date: %w", err)
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.New("check_out_date must be after check_in_date")
	}
	return checkIn, checkOut, nil
}
