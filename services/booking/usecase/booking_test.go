package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/services/booking"
	"github.com/karibustays/karibu/services/booking/mocks"
)

func validCreateRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		UserID:       "550e8400-e29b-41d4-a716-446655440001",
		HotelID:      "550e8400-e29b-41d4-a716-446655440002",
		RoomID:       "550e8400-e29b-41d4-a716-446655440003",
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		TotalAmount:  250000,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo)

	req := validCreateRequest()
	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) (*models.Booking, error) {
			assert.Equal(t, models.BookingStatusPending, b.Status)
			assert.Equal(t, req.RoomID, b.RoomID.String())
			assert.True(t, b.CheckOutDate.After(b.CheckInDate))
			b.BookingID = uuid.New()
			return b, nil
		})

	created, err := uc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.BookingID)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo)

	testCases := []struct {
		name   string
		mutate func(req *models.CreateBookingRequest)
	}{
		{
			name:   "Invalid User ID",
			mutate: func(req *models.CreateBookingRequest) { req.UserID = "not-a-uuid" },
		},
		{
			name:   "Invalid Date Format",
			mutate: func(req *models.CreateBookingRequest) { req.CheckInDate = "10/09/2026" },
		},
		{
			name: "Checkout Before Checkin",
			mutate: func(req *models.CreateBookingRequest) {
				req.CheckInDate = "2026-09-12"
				req.CheckOutDate = "2026-09-10"
			},
		},
		{
			name: "Same Day Checkout",
			mutate: func(req *models.CreateBookingRequest) {
				req.CheckInDate = "2026-09-10"
				req.CheckOutDate = "2026-09-10"
			},
		},
		{
			name:   "Zero Amount",
			mutate: func(req *models.CreateBookingRequest) { req.TotalAmount = 0 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)

			created, err := uc.CreateBooking(context.Background(), req)
			assert.Error(t, err)
			assert.Nil(t, created)
		})
	}
}

func TestCreateBooking_RoomUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo)

	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		Return(nil, booking.ErrRoomUnavailable)

	created, err := uc.CreateBooking(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, booking.ErrRoomUnavailable)
	assert.Nil(t, created)
}

func TestCheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo)

	roomID := uuid.New()
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	t.Run("Available", func(t *testing.T) {
		mockRepo.EXPECT().
			HasConflict(gomock.Any(), roomID, checkIn, checkOut).
			Return(false, nil)

		available, err := uc.CheckAvailability(context.Background(), roomID, checkIn, checkOut)
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockRepo.EXPECT().
			HasConflict(gomock.Any(), roomID, checkIn, checkOut).
			Return(true, nil)

		available, err := uc.CheckAvailability(context.Background(), roomID, checkIn, checkOut)
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("Inverted Range Rejected", func(t *testing.T) {
		available, err := uc.CheckAvailability(context.Background(), roomID, checkOut, checkIn)
		assert.Error(t, err)
		assert.False(t, available)
	})
}

func TestUpdateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo)

	bookingID := uuid.New()
	existing := &models.Booking{
		BookingID:    bookingID,
		CheckInDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		TotalAmount:  250000,
		Status:       models.BookingStatusPending,
	}

	t.Run("Extend Stay", func(t *testing.T) {
		newCheckOut := "2026-09-14"
		mockRepo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(existing, nil)
		mockRepo.EXPECT().
			UpdateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *models.Booking) (*models.Booking, error) {
				assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), b.CheckOutDate)
				return b, nil
			})

		updated, err := uc.UpdateBooking(context.Background(), bookingID, models.UpdateBookingRequest{
			CheckOutDate: &newCheckOut,
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), updated.CheckOutDate)
	})

	t.Run("Inverted Range Rejected", func(t *testing.T) {
		badCheckOut := "2026-09-09"
		mockRepo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(existing, nil)

		updated, err := uc.UpdateBooking(context.Background(), bookingID, models.UpdateBookingRequest{
			CheckOutDate: &badCheckOut,
		})
		assert.Error(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(nil, booking.ErrBookingNotFound)

		updated, err := uc.UpdateBooking(context.Background(), bookingID, models.UpdateBookingRequest{})
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
		assert.Nil(t, updated)
	})
}

func TestGetBookingsByUser_PaginationDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(&models.Config{}, mockRepo)

	userID := uuid.New()
	mockRepo.EXPECT().
		GetBookingsByUser(gomock.Any(), userID, 20, 0).
		Return([]*models.Booking{}, nil)

	bookings, err := uc.GetBookingsByUser(context.Background(), userID, 0, -5)
	assert.NoError(t, err)
	assert.Empty(t, bookings)
}
