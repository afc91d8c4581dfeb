package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/services/booking"
	"github.com/karibustays/karibu/services/booking/mocks"
)

func setupBookingHandlerTest(t *testing.T) (*BookingHandler, *mocks.MockBookingUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockBookingUC(ctrl)
	return NewBookingHandler(mockUC), mockUC, echo.New()
}

func TestCreateBookingHandler(t *testing.T) {
	body := `{
		"user_id": "550e8400-e29b-41d4-a716-446655440001",
		"hotel_id": "550e8400-e29b-41d4-a716-446655440002",
		"room_id": "550e8400-e29b-41d4-a716-446655440003",
		"check_in_date": "2026-09-10",
		"check_out_date": "2026-09-12",
		"total_amount": 250000
	}`

	t.Run("Created", func(t *testing.T) {
		h, mockUC, e := setupBookingHandlerTest(t)
		mockUC.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(&models.Booking{
				BookingID: uuid.New(),
				Status:    models.BookingStatusPending,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.CreateBooking(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "pending")
	})

	t.Run("Room Unavailable Maps To Conflict", func(t *testing.T) {
		h, mockUC, e := setupBookingHandlerTest(t)
		mockUC.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, booking.ErrRoomUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := h.CreateBooking(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetBookingHandler(t *testing.T) {
	bookingID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		h, mockUC, e := setupBookingHandlerTest(t)
		mockUC.EXPECT().
			GetBooking(gomock.Any(), bookingID).
			Return(&models.Booking{BookingID: bookingID, Status: models.BookingStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(bookingID.String())

		err := h.GetBooking(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		h, mockUC, e := setupBookingHandlerTest(t)
		mockUC.EXPECT().
			GetBooking(gomock.Any(), bookingID).
			Return(nil, booking.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(bookingID.String())

		err := h.GetBooking(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		h, _, e := setupBookingHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		err := h.GetBooking(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckAvailabilityHandler(t *testing.T) {
	roomID := uuid.New()

	h, mockUC, e := setupBookingHandlerTest(t)
	mockUC.EXPECT().
		CheckAvailability(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
		Return(true, nil)

	target := "/v1/bookings/availability?room_id=" + roomID.String() +
		"&check_in_date=2026-09-10&check_out_date=2026-09-12"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	err := h.CheckAvailability(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":true`)
}
