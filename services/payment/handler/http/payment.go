package http

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/karibustays/karibu/internal/pkg/logger"
	"github.com/karibustays/karibu/internal/pkg/middleware"
	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/internal/utils"
	"github.com/karibustays/karibu/services/booking"
	"github.com/karibustays/karibu/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	cfg       *models.Config
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(
	cfg *models.Config,
	paymentUC payment.PaymentUC,
) *PaymentHandler {
	return &PaymentHandler{
		cfg:       cfg,
		paymentUC: paymentUC,
	}
}

// RegisterRoutes registers the payment handler routes
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/v1/payments")
	g.POST("/mpesa/initiate", h.InitiateMpesa)
	g.POST("/mpesa/callback", h.MpesaCallback)
	g.POST("/paystack/initiate", h.InitiatePaystack)
	g.POST("/paystack/webhook", h.PaystackWebhook)
	g.GET("/paystack/verify/:reference", h.VerifyPaystack)
	g.GET("/status/:reference", h.GetStatus)
	g.GET("/booking/:bookingID", h.GetPaymentsByBooking)

	apiKey := middleware.NewAPIKeyMiddleware(&h.cfg.APIKey)
	admin := g.Group("/admin", apiKey.Handler())
	admin.POST("/expire-pending", h.ExpirePending)
}

// InitiateMpesa triggers an STK push for a booking
func (h *PaymentHandler) InitiateMpesa(c echo.Context) error {
	var req models.MpesaInitiateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.paymentUC.InitiateMpesa(c.Request().Context(), &req)
	if err != nil {
		return h.initiateError(c, err, "mpesa")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "STK push sent", resp)
}

// InitiatePaystack creates a Paystack charge for a booking
func (h *PaymentHandler) InitiatePaystack(c echo.Context) error {
	var req models.PaystackInitiateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.paymentUC.InitiatePaystack(c.Request().Context(), &req)
	if err != nil {
		return h.initiateError(c, err, "paystack")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Charge initialized", resp)
}

func (h *PaymentHandler) initiateError(c echo.Context, err error, provider string) error {
	switch {
	case errors.Is(err, payment.ErrInvalidRequest):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		return utils.NotFoundResponse(c, "Booking not found")
	case errors.Is(err, booking.ErrBookingCancelled):
		return utils.ConflictResponse(c, "Booking has been cancelled")
	}

	logger.Error("Payment initiation failed",
		logger.ErrorField(err),
		logger.String("provider", provider),
	)
	return utils.BadGatewayResponse(c, "Payment initiation failed: "+err.Error())
}

// MpesaCallback receives the asynchronous STK push result. Daraja retries on
// non-success responses, so the callback is always acknowledged with
// ResultCode 0 no matter what happens internally.
func (h *PaymentHandler) MpesaCallback(c echo.Context) error {
	ack := models.MpesaCallbackAck{ResultCode: 0, ResultDesc: "Accepted"}

	var cb models.MpesaCallback
	if err := c.Bind(&cb); err != nil {
		logger.Warn("Malformed STK callback payload",
			logger.ErrorField(err),
		)
		return c.JSON(http.StatusOK, ack)
	}

	if err := h.paymentUC.HandleMpesaCallback(c.Request().Context(), &cb); err != nil {
		logger.Error("STK callback reconciliation failed",
			logger.ErrorField(err),
			logger.String("checkout_request_id", cb.Body.StkCallback.CheckoutRequestID),
		)
	}

	return c.JSON(http.StatusOK, ack)
}

// PaystackWebhook receives Paystack charge events. The signature gate keeps
// forged events out; authentic events are always acknowledged with 200 so
// Paystack does not retry deliveries we have already recorded.
func (h *PaymentHandler) PaystackWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable request body")
	}

	if !h.validPaystackSignature(body, c.Request().Header.Get("x-paystack-signature")) {
		logger.Warn("Rejected webhook with invalid signature")
		return utils.UnauthorizedResponse(c, "Invalid signature")
	}

	var ev models.PaystackWebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		logger.Warn("Malformed webhook payload",
			logger.ErrorField(err),
		)
		return c.NoContent(http.StatusOK)
	}

	if err := h.paymentUC.HandlePaystackWebhook(c.Request().Context(), &ev); err != nil {
		logger.Error("Webhook reconciliation failed",
			logger.ErrorField(err),
			logger.String("event", ev.Event),
			logger.String("reference", ev.Data.Reference),
		)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PaymentHandler) validPaystackSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(h.cfg.Paystack.SecretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyPaystack pulls the charge state from Paystack and reconciles it
func (h *PaymentHandler) VerifyPaystack(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Reference is required")
	}

	info, err := h.paymentUC.VerifyPaystack(c.Request().Context(), reference)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			return utils.NotFoundResponse(c, "Payment not found")
		}
		logger.Error("Paystack verification failed",
			logger.ErrorField(err),
			logger.String("reference", reference),
		)
		return utils.BadGatewayResponse(c, "Verification failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment verified", info)
}

// GetStatus returns the polling view of a payment
func (h *PaymentHandler) GetStatus(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Reference is required")
	}

	info, err := h.paymentUC.GetStatusByReference(c.Request().Context(), reference)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			return utils.NotFoundResponse(c, "Payment not found")
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to retrieve payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved", info)
}

// GetPaymentsByBooking lists payments recorded against a booking
func (h *PaymentHandler) GetPaymentsByBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	payments, err := h.paymentUC.GetPaymentsByBooking(c.Request().Context(), bookingID)
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list payments")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}

// ExpirePending administratively fails pending payments older than the
// configured settlement window
func (h *PaymentHandler) ExpirePending(c echo.Context) error {
	count, err := h.paymentUC.ExpireStalePending(c.Request().Context())
	if err != nil {
		logger.Error("Failed to expire stale pending payments",
			logger.ErrorField(err),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to expire pending payments")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stale pending payments expired", echo.Map{
		"expired": count,
	})
}
