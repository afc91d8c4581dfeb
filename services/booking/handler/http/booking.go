package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/karibustays/karibu/internal/pkg/logger"
	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/internal/utils"
	"github.com/karibustays/karibu/services/booking"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(
	bookingUC booking.BookingUC,
) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// RegisterRoutes registers the booking handler routes
func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/v1/bookings")
	g.POST("", h.CreateBooking)
	g.GET("/availability", h.CheckAvailability)
	g.GET("/:id", h.GetBooking)
	g.GET("/user/:userID", h.GetBookingsByUser)
	g.PATCH("/:id", h.UpdateBooking)
	g.POST("/:id/cancel", h.CancelBooking)
	g.DELETE("/:id", h.DeleteBooking)
}

// CreateBooking handles booking creation requests
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for booking creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateBooking"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.bookingUC.CreateBooking(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrRoomUnavailable) {
			return utils.ConflictResponse(c, "Room is not available for the requested dates")
		}
		logger.Error("Failed to create booking",
			logger.ErrorField(err),
			logger.String("room_id", req.RoomID),
		)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", created)
}

// GetBooking handles booking retrieval requests
func (h *BookingHandler) GetBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "Booking not found")
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to retrieve booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", b)
}

// GetBookingsByUser handles listing a user's bookings
func (h *BookingHandler) GetBookingsByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	bookings, err := h.bookingUC.GetBookingsByUser(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// CheckAvailability reports whether a room is free for a date range
func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	roomID, err := uuid.Parse(c.QueryParam("room_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid room_id")
	}

	checkIn, err := time.Parse("2006-01-02", c.QueryParam("check_in_date"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid check_in_date, expected YYYY-MM-DD")
	}
	checkOut, err := time.Parse("2006-01-02", c.QueryParam("check_out_date"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid check_out_date, expected YYYY-MM-DD")
	}

	available, err := h.bookingUC.CheckAvailability(c.Request().Context(), roomID, checkIn, checkOut)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability checked", models.AvailabilityResponse{
		RoomID:       roomID.String(),
		CheckInDate:  c.QueryParam("check_in_date"),
		CheckOutDate: c.QueryParam("check_out_date"),
		Available:    available,
	})
}

// UpdateBooking handles partial booking updates
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	updated, err := h.bookingUC.UpdateBooking(c.Request().Context(), bookingID, req)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "Booking not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking updated successfully", updated)
}

// CancelBooking marks a booking cancelled
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	cancelled, err := h.bookingUC.CancelBooking(c.Request().Context(), bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "Booking not found")
		}
		logger.Error("Failed to cancel booking",
			logger.ErrorField(err),
			logger.String("booking_id", bookingID.String()),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to cancel booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", cancelled)
}

// DeleteBooking removes a booking record
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	if err := h.bookingUC.DeleteBooking(c.Request().Context(), bookingID); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "Booking not found")
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to delete booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking deleted successfully", nil)
}
