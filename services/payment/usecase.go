package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/karibustays/karibu/internal/pkg/models"
)

// ErrInvalidRequest marks client input rejected before any gateway or store
// was touched. Handlers map it to a 400; gateway failures stay a 502.
var ErrInvalidRequest = errors.New("invalid payment request")

// PaymentUC defines the interface for payment business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/karibustays/karibu/services/payment PaymentUC
type PaymentUC interface {
	// InitiateMpesa validates the MSISDN, triggers an STK push and records
	// the pending payment under the returned CheckoutRequestID
	InitiateMpesa(ctx context.Context, req *models.MpesaInitiateRequest) (*models.InitiateResponse, error)

	// InitiatePaystack creates a Paystack charge and records the pending
	// payment under the returned reference
	InitiatePaystack(ctx context.Context, req *models.PaystackInitiateRequest) (*models.InitiateResponse, error)

	// Reconcile applies a normalized settlement event: settle the payment,
	// promote the booking on success, publish settlement events. It never
	// returns an error for an unknown reference.
	Reconcile(ctx context.Context, ev *models.ReconciliationEvent) error

	// HandleMpesaCallback normalizes an STK callback and reconciles it
	HandleMpesaCallback(ctx context.Context, cb *models.MpesaCallback) error

	// HandlePaystackWebhook normalizes a provider webhook and reconciles it.
	// Non-charge events are ignored.
	HandlePaystackWebhook(ctx context.Context, ev *models.PaystackWebhookEvent) error

	// VerifyPaystack pulls the transaction state from Paystack and runs
	// reconciliation on the result
	VerifyPaystack(ctx context.Context, reference string) (*models.PaymentStatusInfo, error)

	// GetStatusByReference returns the polling view of a payment
	GetStatusByReference(ctx context.Context, reference string) (*models.PaymentStatusInfo, error)

	// GetPaymentsByBooking lists payments recorded against a booking
	GetPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*models.Payment, error)

	// ExpireStalePending fails pending payments older than the configured
	// timeout and returns how many were expired
	ExpireStalePending(ctx context.Context) (int, error)
}
