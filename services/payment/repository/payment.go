package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/services/payment"
)

// PaymentRepo implements the payment repository interface
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

const paymentColumns = `
	payment_id, booking_id, user_id, amount,
	payment_method, payment_status, transaction_id,
	provider_transaction_id, failure_reason, payment_date,
	created_at, updated_at
`

// CreatePayment inserts a pending payment keyed by the provider reference
func (r *PaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}

	query := `
		INSERT INTO payments (
			payment_id, booking_id, user_id, amount,
			payment_method, payment_status, transaction_id,
			provider_transaction_id, failure_reason, payment_date,
			created_at, updated_at
		) VALUES (
			:payment_id, :booking_id, :user_id, :amount,
			:payment_method, :payment_status, :transaction_id,
			:provider_transaction_id, :failure_reason, :payment_date,
			:created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	return p, nil
}

// GetPayment retrieves a payment by ID
func (r *PaymentRepo) GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1`

	var p models.Payment
	err := r.db.GetContext(ctx, &p, query, paymentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &p, nil
}

// GetPaymentByReference retrieves the payment holding the provider reference.
// transaction_id carries a unique index so the reference resolves to at most
// one row.
func (r *PaymentRepo) GetPaymentByReference(ctx context.Context, reference string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`

	var p models.Payment
	err := r.db.GetContext(ctx, &p, query, reference)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by reference: %w", err)
	}

	return &p, nil
}

// GetPaymentsByBooking retrieves payments recorded against a booking
func (r *PaymentRepo) GetPaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at DESC
	`

	payments := []*models.Payment{}
	err := r.db.SelectContext(ctx, &payments, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}

// MarkTerminal moves a pending payment to the given terminal status with a
// guarded update. Only a pending row matches, so concurrent deliveries of
// the same settlement race on the database and exactly one wins; the losers
// fall through to the re-read below and report transitioned=false.
// transaction_id is never touched here. It must keep matching the reference
// the provider replays, otherwise duplicate deliveries and status polls
// could no longer find the row.
func (r *PaymentRepo) MarkTerminal(ctx context.Context, paymentID uuid.UUID, outcome models.PaymentStatus, providerTxnID, reason string, paidAt *time.Time) (*models.Payment, bool, error) {
	if !outcome.Terminal() {
		return nil, false, fmt.Errorf("status %s is not terminal", outcome)
	}

	var failureReason *string
	if outcome == models.PaymentStatusFailed && reason != "" {
		failureReason = &reason
	}

	query := `
		UPDATE payments
		SET payment_status = $1,
			provider_transaction_id = COALESCE(NULLIF($2, ''), provider_transaction_id),
			failure_reason = $3,
			payment_date = $4,
			updated_at = $5
		WHERE payment_id = $6 AND payment_status = $7
		RETURNING ` + paymentColumns

	var p models.Payment
	err := r.db.QueryRowxContext(ctx, query,
		outcome,
		providerTxnID,
		failureReason,
		paidAt,
		time.Now(),
		paymentID,
		models.PaymentStatusPending,
	).StructScan(&p)
	if err == nil {
		return &p, true, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, fmt.Errorf("failed to settle payment: %w", err)
	}

	// The payment was not pending. Distinguish a duplicate delivery from a
	// genuinely conflicting outcome.
	existing, getErr := r.GetPayment(ctx, paymentID)
	if getErr != nil {
		return nil, false, getErr
	}
	if existing.Status == outcome {
		return existing, false, nil
	}

	return nil, false, fmt.Errorf("payment %s is %s, refusing %s: %w",
		paymentID, existing.Status, outcome, payment.ErrOutcomeConflict)
}

// ExpireStalePending fails every pending payment created before the cutoff
func (r *PaymentRepo) ExpireStalePending(ctx context.Context, olderThan time.Time) ([]*models.Payment, error) {
	query := `
		UPDATE payments
		SET payment_status = $1, failure_reason = $2, updated_at = $3
		WHERE payment_status = $4 AND created_at < $5
		RETURNING ` + paymentColumns

	reason := "expired before provider settlement"
	rows, err := r.db.QueryxContext(ctx, query,
		models.PaymentStatusFailed,
		reason,
		time.Now(),
		models.PaymentStatusPending,
		olderThan,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to expire pending payments: %w", err)
	}
	defer rows.Close()

	expired := []*models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.StructScan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan expired payment: %w", err)
		}
		expired = append(expired, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expired payments: %w", err)
	}

	return expired, nil
}
