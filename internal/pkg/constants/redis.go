package constants

import "time"

// Redis keys and TTLs
const (
	// KeyMpesaAccessToken caches the Daraja OAuth bearer token
	KeyMpesaAccessToken = "mpesa:access_token"

	// KeyPaymentStatusPrefix caches polling lookups keyed by provider reference
	KeyPaymentStatusPrefix = "payment:status:"

	// PaymentStatusPendingTTL is short so polling clients pick up settlement quickly
	PaymentStatusPendingTTL = 15 * time.Second

	// PaymentStatusTerminalTTL is long because terminal states never change
	PaymentStatusTerminalTTL = 1 * time.Hour

	// MpesaTokenSafetyMargin is shaved off the provider-reported token expiry
	MpesaTokenSafetyMargin = 60 * time.Second
)
