package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibustays/karibu/internal/pkg/constants"
	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/services/booking"
	"github.com/karibustays/karibu/services/payment"
)

func mustUUID(s string) uuid.UUID {
	return uuid.MustParse(s)
}

func TestInitiateMpesa(t *testing.T) {
	bookingID := "650e8400-e29b-41d4-a716-446655440001"

	t.Run("Success", func(t *testing.T) {
		f := setupPaymentUCTest(t)

		b := &models.Booking{
			BookingID: mustUUID(bookingID),
			Status:    models.BookingStatusPending,
		}

		f.bookingRepo.EXPECT().
			GetBooking(gomock.Any(), b.BookingID).
			Return(b, nil)
		f.mpesaGW.EXPECT().
			Initiate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *models.GatewayInitiateRequest) (*models.GatewayInitiateResult, error) {
				// Normalized to the 254 form before it reaches the provider
				assert.Equal(t, "254712345678", req.Phone)
				return &models.GatewayInitiateResult{
					ProviderReference: "ws_CO_123",
					CustomerMessage:   "Enter your PIN",
				}, nil
			})
		f.paymentRepo.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
				assert.Equal(t, "ws_CO_123", p.TransactionID)
				assert.Equal(t, models.PaymentStatusPending, p.Status)
				assert.Equal(t, models.PaymentMethodMpesa, p.Method)
				return p, nil
			})

		resp, err := f.uc.InitiateMpesa(context.Background(), &models.MpesaInitiateRequest{
			Phone:     "0712345678",
			Amount:    250000,
			BookingID: bookingID,
		})
		require.NoError(t, err)
		assert.Equal(t, "ws_CO_123", resp.ProviderReference)
	})

	t.Run("Invalid Phone", func(t *testing.T) {
		f := setupPaymentUCTest(t)

		resp, err := f.uc.InitiateMpesa(context.Background(), &models.MpesaInitiateRequest{
			Phone:     "12345",
			Amount:    250000,
			BookingID: bookingID,
		})
		assert.ErrorIs(t, err, payment.ErrInvalidRequest)
		assert.Nil(t, resp)
	})

	t.Run("Cancelled Booking Rejected", func(t *testing.T) {
		f := setupPaymentUCTest(t)

		b := &models.Booking{
			BookingID: mustUUID(bookingID),
			Status:    models.BookingStatusCancelled,
		}
		f.bookingRepo.EXPECT().
			GetBooking(gomock.Any(), b.BookingID).
			Return(b, nil)

		resp, err := f.uc.InitiateMpesa(context.Background(), &models.MpesaInitiateRequest{
			Phone:     "0712345678",
			Amount:    250000,
			BookingID: bookingID,
		})
		assert.ErrorIs(t, err, booking.ErrBookingCancelled)
		assert.Nil(t, resp)
	})
}

func TestInitiatePaystack(t *testing.T) {
	bookingID := "650e8400-e29b-41d4-a716-446655440001"

	t.Run("Success", func(t *testing.T) {
		f := setupPaymentUCTest(t)

		b := &models.Booking{
			BookingID: mustUUID(bookingID),
			Status:    models.BookingStatusPending,
		}
		f.bookingRepo.EXPECT().
			GetBooking(gomock.Any(), b.BookingID).
			Return(b, nil)
		f.paystackGW.EXPECT().
			Initiate(gomock.Any(), gomock.Any()).
			Return(&models.GatewayInitiateResult{
				ProviderReference: "ps_ref_01",
				AuthorizationURL:  "https://checkout.paystack.com/abc",
			}, nil)
		f.paymentRepo.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
				assert.Equal(t, models.PaymentMethodPaystack, p.Method)
				return p, nil
			})

		resp, err := f.uc.InitiatePaystack(context.Background(), &models.PaystackInitiateRequest{
			Email:     "guest@example.com",
			Amount:    250000,
			BookingID: bookingID,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.paystack.com/abc", resp.AuthorizationURL)
	})

	t.Run("Missing Email", func(t *testing.T) {
		f := setupPaymentUCTest(t)

		resp, err := f.uc.InitiatePaystack(context.Background(), &models.PaystackInitiateRequest{
			Amount:    250000,
			BookingID: bookingID,
		})
		assert.ErrorIs(t, err, payment.ErrInvalidRequest)
		assert.Nil(t, resp)
	})
}

func TestGetStatusByReference(t *testing.T) {
	t.Run("Cache Miss Then Hit", func(t *testing.T) {
		f := setupPaymentUCTest(t)
		p := pendingPayment()

		// Exactly one repo hit, the second call is served from Redis
		f.paymentRepo.EXPECT().
			GetPaymentByReference(gomock.Any(), "ws_CO_123").
			Return(p, nil).
			Times(1)

		first, err := f.uc.GetStatusByReference(context.Background(), "ws_CO_123")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPending, first.Status)

		second, err := f.uc.GetStatusByReference(context.Background(), "ws_CO_123")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Settled Payment Resolves By Initiation Reference", func(t *testing.T) {
		f := setupPaymentUCTest(t)
		p := pendingPayment()
		p.Status = models.PaymentStatusCompleted
		p.ProviderTransactionID = strPtr("RCPT001")

		f.paymentRepo.EXPECT().
			GetPaymentByReference(gomock.Any(), "ws_CO_123").
			Return(p, nil)

		info, err := f.uc.GetStatusByReference(context.Background(), "ws_CO_123")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusCompleted, info.Status)
		assert.Equal(t, "ws_CO_123", info.Reference)
		assert.Equal(t, "RCPT001", info.ProviderTransactionID)
	})

	t.Run("Pending Entries Expire Quickly", func(t *testing.T) {
		f := setupPaymentUCTest(t)
		p := pendingPayment()

		f.paymentRepo.EXPECT().
			GetPaymentByReference(gomock.Any(), "ws_CO_123").
			Return(p, nil).
			Times(2)

		_, err := f.uc.GetStatusByReference(context.Background(), "ws_CO_123")
		require.NoError(t, err)

		f.mr.FastForward(constants.PaymentStatusPendingTTL + time.Second)

		_, err = f.uc.GetStatusByReference(context.Background(), "ws_CO_123")
		require.NoError(t, err)
	})
}

func TestExpireStalePending(t *testing.T) {
	f := setupPaymentUCTest(t)

	reason := "expired before provider settlement"
	expired := pendingPayment()
	expired.Status = models.PaymentStatusFailed
	expired.FailureReason = &reason

	f.paymentRepo.EXPECT().
		ExpireStalePending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, olderThan time.Time) ([]*models.Payment, error) {
			// The cutoff honors the configured 30 minute window
			assert.WithinDuration(t, time.Now().Add(-30*time.Minute), olderThan, 5*time.Second)
			return []*models.Payment{expired}, nil
		})
	f.settlementGW.EXPECT().
		PublishPaymentSettled(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *models.PaymentSettledEvent) error {
			assert.Equal(t, models.PaymentStatusFailed, ev.Status)
			return nil
		})

	count, err := f.uc.ExpireStalePending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
