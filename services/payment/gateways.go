package payment

import (
	"context"

	"github.com/karibustays/karibu/internal/pkg/models"
)

// PaymentGW defines the interface for a payment provider adapter. Each
// adapter translates its provider's wire formats into the shared
// ReconciliationEvent so the coordinator stays provider-agnostic.
type PaymentGW interface {
	// Initiate starts a charge with the provider and returns the provider
	// reference the settlement will later be matched on
	Initiate(ctx context.Context, req *models.GatewayInitiateRequest) (*models.GatewayInitiateResult, error)
}

// MpesaGW is the Daraja STK push adapter
type MpesaGW interface {
	PaymentGW

	// NormalizeCallback maps an STK callback onto a reconciliation event
	NormalizeCallback(cb *models.MpesaCallback) (*models.ReconciliationEvent, error)
}

// PaystackGW is the Paystack charge adapter
type PaystackGW interface {
	PaymentGW

	// Verify pulls the authoritative transaction state from Paystack.
	// Verify is idempotent on the provider side and safe to call any
	// number of times for the same reference.
	Verify(ctx context.Context, reference string) (*models.ReconciliationEvent, error)

	// NormalizeWebhook maps a charge webhook onto a reconciliation event.
	// Events other than charge outcomes return (nil, nil).
	NormalizeWebhook(ev *models.PaystackWebhookEvent) (*models.ReconciliationEvent, error)
}

// SettlementGW publishes settlement facts to the message broker
type SettlementGW interface {
	PublishPaymentSettled(ctx context.Context, ev *models.PaymentSettledEvent) error
	PublishBookingConfirmed(ctx context.Context, ev *models.BookingConfirmedEvent) error
}
