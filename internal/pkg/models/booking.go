package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a room booking record.
// Check-in/check-out dates form a half-open interval [check_in, check_out):
// the checkout day is free for the next guest.
type Booking struct {
	BookingID    uuid.UUID     `json:"booking_id" db:"booking_id"`
	UserID       uuid.UUID     `json:"user_id" db:"user_id"`
	HotelID      uuid.UUID     `json:"hotel_id" db:"hotel_id"`
	RoomID       uuid.UUID     `json:"room_id" db:"room_id"`
	CheckInDate  time.Time     `json:"check_in_date" db:"check_in_date"`
	CheckOutDate time.Time     `json:"check_out_date" db:"check_out_date"`
	TotalAmount  int64         `json:"total_amount" db:"total_amount"`
	Status       BookingStatus `json:"status" db:"status"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest represents a booking creation request
type CreateBookingRequest struct {
	UserID       string `json:"user_id"`
	HotelID      string `json:"hotel_id"`
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`  // YYYY-MM-DD
	CheckOutDate string `json:"check_out_date"` // YYYY-MM-DD
	TotalAmount  int64  `json:"total_amount"`   // smallest currency unit
}

// UpdateBookingRequest represents a partial booking update
type UpdateBookingRequest struct {
	CheckInDate  *string `json:"check_in_date,omitempty"`
	CheckOutDate *string `json:"check_out_date,omitempty"`
	TotalAmount  *int64  `json:"total_amount,omitempty"`
}

// AvailabilityResponse reports whether a room is free for a date range
type AvailabilityResponse struct {
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}

// BookingConfirmedEvent is published when a booking is promoted to confirmed
type BookingConfirmedEvent struct {
	BookingID string    `json:"booking_id"`
	PaymentID string    `json:"payment_id"`
	Timestamp time.Time `json:"timestamp"`
}
