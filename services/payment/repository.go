package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/karibustays/karibu/internal/pkg/models"
)

var (
	// ErrPaymentNotFound is returned when no payment matches the lookup
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrOutcomeConflict is returned when a terminal transition is attempted
	// against a payment already settled with the opposite outcome. It marks
	// a provider inconsistency that needs operator attention, never a
	// silent overwrite.
	ErrOutcomeConflict = errors.New("payment already settled with a conflicting outcome")
)

// PaymentRepo defines the interface for payment data access operations
type PaymentRepo interface {
	// CreatePayment inserts a pending payment keyed by the provider reference
	CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error)

	// GetPayment retrieves a payment by ID
	GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error)

	// GetPaymentByReference retrieves the payment whose transaction_id equals
	// the provider reference. Returns ErrPaymentNotFound when no row matches.
	GetPaymentByReference(ctx context.Context, reference string) (*models.Payment, error)

	// GetPaymentsByBooking retrieves all payments recorded against a booking
	GetPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*models.Payment, error)

	// MarkTerminal moves a pending payment to the given terminal status.
	// The returned bool reports whether this call performed the transition:
	// false with a nil error means the payment was already in the same
	// terminal status (a duplicate delivery). A payment already settled with
	// the opposite outcome returns ErrOutcomeConflict.
	MarkTerminal(ctx context.Context, paymentID uuid.UUID, outcome models.PaymentStatus, providerTxnID, reason string, paidAt *time.Time) (*models.Payment, bool, error)

	// ExpireStalePending fails every pending payment older than the cutoff
	// and returns the payments it transitioned
	ExpireStalePending(ctx context.Context, olderThan time.Time) ([]*models.Payment, error)
}
