package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/karibustays/karibu/internal/pkg/logger"
	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/services/booking"
	"github.com/karibustays/karibu/services/payment"
)

// Reconcile applies a normalized settlement event against the payment and
// its booking. The order is fixed: the payment settles first, then the
// booking is promoted. A completed payment is never reverted when the
// promotion fails, the promotion is retried instead and re-driven by any
// duplicate delivery of the same event.
func (uc *PaymentUC) Reconcile(ctx context.Context, ev *models.ReconciliationEvent) error {
	p, err := uc.paymentRepo.GetPaymentByReference(ctx, ev.Reference)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			// Providers replay old events and senders can probe the
			// endpoint, an unknown reference is not an internal failure
			logger.WarnCtx(ctx, "Settlement event for unknown reference",
				logger.String("provider", string(ev.Provider)),
				logger.String("reference", ev.Reference))
			return nil
		}
		return err
	}

	if ev.Amount > 0 && ev.Amount != p.Amount {
		logger.WarnCtx(ctx, "Settled amount differs from initiated amount",
			logger.String("payment_id", p.PaymentID.String()),
			logger.Int64("initiated_amount", p.Amount),
			logger.Int64("settled_amount", ev.Amount))
	}

	outcome := ev.Outcome()
	settled, transitioned, err := uc.paymentRepo.MarkTerminal(ctx, p.PaymentID, outcome, ev.ProviderTransactionID, ev.Reason, ev.PaidAt)
	if err != nil {
		if errors.Is(err, payment.ErrOutcomeConflict) {
			logger.ErrorCtx(ctx, "Provider reported a conflicting settlement outcome",
				logger.ErrorField(err),
				logger.String("payment_id", p.PaymentID.String()),
				logger.String("reference", ev.Reference),
				logger.String("reported_outcome", string(outcome)))
		}
		return err
	}

	if !transitioned {
		logger.InfoCtx(ctx, "Duplicate settlement delivery",
			logger.String("payment_id", settled.PaymentID.String()),
			logger.String("reference", ev.Reference),
			logger.String("status", string(settled.Status)))
	}

	// Promote the booking whenever the payment stands completed, including
	// on duplicates: a redelivery is the recovery path for a promotion that
	// failed after the payment already settled.
	if settled.Status == models.PaymentStatusCompleted {
		if err := uc.confirmBooking(ctx, settled); err != nil {
			return err
		}
	}

	if transitioned {
		uc.invalidateStatusCache(ctx, settled.TransactionID)
		uc.publishSettled(ctx, settled)
	}

	return nil
}

// HandleMpesaCallback normalizes an STK callback and reconciles it
func (uc *PaymentUC) HandleMpesaCallback(ctx context.Context, cb *models.MpesaCallback) error {
	ev, err := uc.mpesaGW.NormalizeCallback(cb)
	if err != nil {
		return err
	}
	return uc.Reconcile(ctx, ev)
}

// HandlePaystackWebhook normalizes a provider webhook and reconciles it
func (uc *PaymentUC) HandlePaystackWebhook(ctx context.Context, webhook *models.PaystackWebhookEvent) error {
	ev, err := uc.paystackGW.NormalizeWebhook(webhook)
	if err != nil {
		return err
	}
	if ev == nil {
		logger.DebugCtx(ctx, "Ignoring non-charge webhook event",
			logger.String("event", webhook.Event))
		return nil
	}
	return uc.Reconcile(ctx, ev)
}

func (uc *PaymentUC) confirmBooking(ctx context.Context, p *models.Payment) error {
	var confirmed *models.Booking
	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		var execErr error
		confirmed, execErr = uc.bookingRepo.ConfirmBooking(ctx, p.BookingID)
		return execErr
	})
	if err != nil {
		if errors.Is(err, booking.ErrBookingCancelled) {
			// The money moved but the room is gone. The payment stays
			// completed as the durable record of what the payer paid,
			// resolution belongs to an operator.
			logger.ErrorCtx(ctx, "Settled payment targets a cancelled booking",
				logger.String("payment_id", p.PaymentID.String()),
				logger.String("booking_id", p.BookingID.String()))
			return nil
		}
		logger.ErrorCtx(ctx, "Failed to confirm booking after settlement",
			logger.ErrorField(err),
			logger.String("payment_id", p.PaymentID.String()),
			logger.String("booking_id", p.BookingID.String()))
		return err
	}

	if confirmed != nil {
		ev := &models.BookingConfirmedEvent{
			BookingID: confirmed.BookingID.String(),
			PaymentID: p.PaymentID.String(),
			Timestamp: time.Now(),
		}
		if err := uc.settlementGW.PublishBookingConfirmed(ctx, ev); err != nil {
			logger.WarnCtx(ctx, "Failed to publish booking confirmed event",
				logger.ErrorField(err),
				logger.String("booking_id", confirmed.BookingID.String()))
		}
	}

	return nil
}
