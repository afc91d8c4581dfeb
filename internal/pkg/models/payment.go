package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies the gateway a payment goes through
type PaymentMethod string

const (
	PaymentMethodMpesa    PaymentMethod = "mpesa"
	PaymentMethodPaystack PaymentMethod = "paystack"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Terminal reports whether the status is final
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Payment represents one payment attempt against a booking.
// TransactionID holds the provider reference returned at initiation
// (CheckoutRequestID for M-Pesa, charge reference for Paystack). It is the
// join key every settlement lookup, cache entry and duplicate delivery
// resolves through, so it never changes once set. The provider-confirmed
// final id (M-Pesa receipt number, Paystack charge id) is recorded
// separately in ProviderTransactionID at settlement.
type Payment struct {
	PaymentID             uuid.UUID     `json:"payment_id" db:"payment_id"`
	BookingID             uuid.UUID     `json:"booking_id" db:"booking_id"`
	UserID                uuid.UUID     `json:"user_id" db:"user_id"`
	Amount                int64         `json:"amount" db:"amount"` // smallest currency unit
	Method                PaymentMethod `json:"payment_method" db:"payment_method"`
	Status                PaymentStatus `json:"payment_status" db:"payment_status"`
	TransactionID         string        `json:"transaction_id" db:"transaction_id"`
	ProviderTransactionID *string       `json:"provider_transaction_id,omitempty" db:"provider_transaction_id"`
	FailureReason         *string       `json:"failure_reason,omitempty" db:"failure_reason"`
	PaymentDate           *time.Time    `json:"payment_date,omitempty" db:"payment_date"`
	CreatedAt             time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at" db:"updated_at"`
}

// ReconciliationEvent is the normalized form of a provider callback or verify
// result. Gateway adapters produce it; the reconciliation coordinator consumes
// it without knowing which provider it came from.
type ReconciliationEvent struct {
	Provider              PaymentMethod `json:"provider"`
	Reference             string        `json:"reference"`
	Success               bool          `json:"success"`
	ProviderTransactionID string        `json:"provider_transaction_id"`
	Reason                string        `json:"reason,omitempty"`
	Amount                int64         `json:"amount,omitempty"`
	PaidAt                *time.Time    `json:"paid_at,omitempty"`
}

// Outcome maps the event result onto a terminal payment status
func (e *ReconciliationEvent) Outcome() PaymentStatus {
	if e.Success {
		return PaymentStatusCompleted
	}
	return PaymentStatusFailed
}

// GatewayInitiateRequest carries everything an adapter needs to start a charge
type GatewayInitiateRequest struct {
	BookingID        uuid.UUID
	UserID           uuid.UUID
	Amount           int64
	Phone            string // M-Pesa payer MSISDN
	Email            string // Paystack payer email
	AccountReference string
	TransactionDesc  string
}

// GatewayInitiateResult is what a successful initiation returns. The
// ProviderReference becomes the payment's transaction_id join key.
type GatewayInitiateResult struct {
	ProviderReference string `json:"provider_reference"`
	AuthorizationURL  string `json:"authorization_url,omitempty"`
	CustomerMessage   string `json:"customer_message,omitempty"`
}

// MpesaInitiateRequest is the client-facing STK push initiation request
type MpesaInitiateRequest struct {
	Phone            string `json:"phone"`
	Amount           int64  `json:"amount"`
	BookingID        string `json:"booking_id"`
	AccountReference string `json:"account_reference"`
	TransactionDesc  string `json:"transaction_desc"`
}

// PaystackInitiateRequest is the client-facing Paystack initiation request
type PaystackInitiateRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	BookingID string `json:"booking_id"`
}

// InitiateResponse is returned to the client after a gateway accepted the charge
type InitiateResponse struct {
	PaymentID         string `json:"payment_id"`
	ProviderReference string `json:"provider_reference"`
	AuthorizationURL  string `json:"authorization_url,omitempty"`
	CustomerMessage   string `json:"customer_message,omitempty"`
}

// PaymentStatusInfo is the polling view of a payment
type PaymentStatusInfo struct {
	PaymentID             string        `json:"payment_id"`
	BookingID             string        `json:"booking_id"`
	Reference             string        `json:"reference"`
	Status                PaymentStatus `json:"status"`
	Method                PaymentMethod `json:"method"`
	Amount                int64         `json:"amount"`
	ProviderTransactionID string        `json:"provider_transaction_id,omitempty"`
	FailureReason         string        `json:"failure_reason,omitempty"`
}

// PaymentSettledEvent is published when a payment reaches a terminal status
type PaymentSettledEvent struct {
	PaymentID string        `json:"payment_id"`
	BookingID string        `json:"booking_id"`
	Reference string        `json:"reference"`
	Provider  PaymentMethod `json:"provider"`
	Status    PaymentStatus `json:"status"`
	Amount    int64         `json:"amount"`
	Timestamp time.Time     `json:"timestamp"`
}
