package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/karibustays/karibu/internal/pkg/constants"
	"github.com/karibustays/karibu/internal/pkg/database"
	"github.com/karibustays/karibu/internal/pkg/logger"
	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/internal/pkg/retry"
	"github.com/karibustays/karibu/internal/utils"
	"github.com/karibustays/karibu/services/booking"
	"github.com/karibustays/karibu/services/payment"
)

// PaymentUC implements the payment business logic
type PaymentUC struct {
	cfg          *models.Config
	paymentRepo  payment.PaymentRepo
	bookingRepo  booking.BookingRepo
	mpesaGW      payment.MpesaGW
	paystackGW   payment.PaystackGW
	settlementGW payment.SettlementGW
	redisClient  *database.RedisClient
	retrier      *retry.Retrier
}

// NewPaymentUC creates a new payment usecase
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payment.PaymentRepo,
	bookingRepo booking.BookingRepo,
	mpesaGW payment.MpesaGW,
	paystackGW payment.PaystackGW,
	settlementGW payment.SettlementGW,
	redisClient *database.RedisClient,
) *PaymentUC {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxDelay = 5 * time.Second
	retryCfg.RetryableFunc = func(err error) bool {
		// A cancelled booking will not become confirmable, stop retrying
		return !errors.Is(err, booking.ErrBookingCancelled) &&
			!errors.Is(err, booking.ErrBookingNotFound)
	}

	return &PaymentUC{
		cfg:          cfg,
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		mpesaGW:      mpesaGW,
		paystackGW:   paystackGW,
		settlementGW: settlementGW,
		redisClient:  redisClient,
		retrier:      retry.New(retryCfg, logger.GetGlobalLogger()),
	}
}

// InitiateMpesa validates the payer MSISDN, fires the STK push and records
// the pending payment under the returned CheckoutRequestID
func (uc *PaymentUC) InitiateMpesa(ctx context.Context, req *models.MpesaInitiateRequest) (*models.InitiateResponse, error) {
	valid, msisdn, err := utils.ValidateMSISDN(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid phone number: %v", payment.ErrInvalidRequest, err)
	}
	if !valid {
		return nil, fmt.Errorf("%w: invalid phone number", payment.ErrInvalidRequest)
	}

	b, err := uc.pendingBookingFor(ctx, req.BookingID, req.Amount)
	if err != nil {
		return nil, err
	}

	result, err := uc.mpesaGW.Initiate(ctx, &models.GatewayInitiateRequest{
		BookingID:        b.BookingID,
		UserID:           b.UserID,
		Amount:           req.Amount,
		Phone:            msisdn,
		AccountReference: req.AccountReference,
		TransactionDesc:  req.TransactionDesc,
	})
	if err != nil {
		return nil, err
	}

	return uc.recordPending(ctx, b, req.Amount, models.PaymentMethodMpesa, result)
}

// InitiatePaystack creates a Paystack charge and records the pending payment
// under the returned reference
func (uc *PaymentUC) InitiatePaystack(ctx context.Context, req *models.PaystackInitiateRequest) (*models.InitiateResponse, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", payment.ErrInvalidRequest)
	}

	b, err := uc.pendingBookingFor(ctx, req.BookingID, req.Amount)
	if err != nil {
		return nil, err
	}

	result, err := uc.paystackGW.Initiate(ctx, &models.GatewayInitiateRequest{
		BookingID: b.BookingID,
		UserID:    b.UserID,
		Amount:    req.Amount,
		Email:     req.Email,
	})
	if err != nil {
		return nil, err
	}

	return uc.recordPending(ctx, b, req.Amount, models.PaymentMethodPaystack, result)
}

// pendingBookingFor loads the booking a payment targets and rejects amounts
// that do not cover it
func (uc *PaymentUC) pendingBookingFor(ctx context.Context, bookingID string, amount int64) (*models.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking_id: %v", payment.ErrInvalidRequest, err)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", payment.ErrInvalidRequest)
	}

	b, err := uc.bookingRepo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingStatusCancelled {
		return nil, booking.ErrBookingCancelled
	}

	return b, nil
}

// recordPending persists the pending payment row once the provider accepted
// the charge. The provider reference becomes the settlement join key.
func (uc *PaymentUC) recordPending(ctx context.Context, b *models.Booking, amount int64, method models.PaymentMethod, result *models.GatewayInitiateResult) (*models.InitiateResponse, error) {
	p := &models.Payment{
		BookingID:     b.BookingID,
		UserID:        b.UserID,
		Amount:        amount,
		Method:        method,
		Status:        models.PaymentStatusPending,
		TransactionID: result.ProviderReference,
	}

	created, err := uc.paymentRepo.CreatePayment(ctx, p)
	if err != nil {
		// The charge is already in flight at the provider; surface loudly
		logger.ErrorCtx(ctx, "Charge initiated but payment record failed",
			logger.ErrorField(err),
			logger.String("provider_reference", result.ProviderReference),
			logger.String("booking_id", b.BookingID.String()))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	logger.InfoCtx(ctx, "Payment initiated",
		logger.String("payment_id", created.PaymentID.String()),
		logger.String("booking_id", b.BookingID.String()),
		logger.String("method", string(method)),
		logger.String("provider_reference", result.ProviderReference))

	return &models.InitiateResponse{
		PaymentID:         created.PaymentID.String(),
		ProviderReference: result.ProviderReference,
		AuthorizationURL:  result.AuthorizationURL,
		CustomerMessage:   result.CustomerMessage,
	}, nil
}

// VerifyPaystack pulls the charge state from Paystack and reconciles any
// terminal outcome it reports
func (uc *PaymentUC) VerifyPaystack(ctx context.Context, reference string) (*models.PaymentStatusInfo, error) {
	ev, err := uc.paystackGW.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}
	if ev != nil {
		if err := uc.Reconcile(ctx, ev); err != nil {
			return nil, err
		}
	}

	return uc.GetStatusByReference(ctx, reference)
}

// GetStatusByReference returns the polling view of a payment, served from
// Redis when a fresh cache entry exists
func (uc *PaymentUC) GetStatusByReference(ctx context.Context, reference string) (*models.PaymentStatusInfo, error) {
	cacheKey := constants.KeyPaymentStatusPrefix + reference

	if cached, err := uc.redisClient.Get(ctx, cacheKey); err == nil && cached != "" {
		var info models.PaymentStatusInfo
		if err := json.Unmarshal([]byte(cached), &info); err == nil {
			return &info, nil
		}
	} else if err != nil && err != redis.Nil {
		logger.WarnCtx(ctx, "Payment status cache lookup failed",
			logger.ErrorField(err),
			logger.String("reference", reference))
	}

	p, err := uc.paymentRepo.GetPaymentByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	info := &models.PaymentStatusInfo{
		PaymentID: p.PaymentID.String(),
		BookingID: p.BookingID.String(),
		Reference: p.TransactionID,
		Status:    p.Status,
		Method:    p.Method,
		Amount:    p.Amount,
	}
	if p.ProviderTransactionID != nil {
		info.ProviderTransactionID = *p.ProviderTransactionID
	}
	if p.FailureReason != nil {
		info.FailureReason = *p.FailureReason
	}

	ttl := constants.PaymentStatusPendingTTL
	if p.Status.Terminal() {
		ttl = constants.PaymentStatusTerminalTTL
	}
	if data, err := json.Marshal(info); err == nil {
		if err := uc.redisClient.Set(ctx, cacheKey, string(data), ttl); err != nil {
			logger.WarnCtx(ctx, "Failed to cache payment status",
				logger.ErrorField(err),
				logger.String("reference", reference))
		}
	}

	return info, nil
}

// GetPaymentsByBooking lists payments recorded against a booking
func (uc *PaymentUC) GetPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*models.Payment, error) {
	return uc.paymentRepo.GetPaymentsByBooking(ctx, bookingID)
}

// ExpireStalePending fails pending payments that outlived the configured
// settlement window and returns how many were expired
func (uc *PaymentUC) ExpireStalePending(ctx context.Context) (int, error) {
	timeout := time.Duration(uc.cfg.Payment.PendingTimeoutMinutes) * time.Minute
	cutoff := time.Now().Add(-timeout)

	expired, err := uc.paymentRepo.ExpireStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, p := range expired {
		uc.invalidateStatusCache(ctx, p.TransactionID)
		uc.publishSettled(ctx, p)
		logger.InfoCtx(ctx, "Expired stale pending payment",
			logger.String("payment_id", p.PaymentID.String()),
			logger.String("reference", p.TransactionID))
	}

	return len(expired), nil
}

func (uc *PaymentUC) invalidateStatusCache(ctx context.Context, reference string) {
	if reference == "" {
		return
	}
	if err := uc.redisClient.Delete(ctx, constants.KeyPaymentStatusPrefix+reference); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate payment status cache",
			logger.ErrorField(err),
			logger.String("reference", reference))
	}
}

func (uc *PaymentUC) publishSettled(ctx context.Context, p *models.Payment) {
	ev := &models.PaymentSettledEvent{
		PaymentID: p.PaymentID.String(),
		BookingID: p.BookingID.String(),
		Reference: p.TransactionID,
		Provider:  p.Method,
		Status:    p.Status,
		Amount:    p.Amount,
		Timestamp: time.Now(),
	}
	if err := uc.settlementGW.PublishPaymentSettled(ctx, ev); err != nil {
		// Settlement is already durable in the database, publishing is
		// best effort
		logger.WarnCtx(ctx, "Failed to publish payment settled event",
			logger.ErrorField(err),
			logger.String("payment_id", p.PaymentID.String()))
	}
}
