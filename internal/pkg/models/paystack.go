package models

import "time"

// PaystackInitializeRequest is the transaction/initialize payload
type PaystackInitializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"` // subunits (kobo/cents)
	Reference   string `json:"reference,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
}

// PaystackInitializeResponse is the transaction/initialize response envelope
type PaystackInitializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// PaystackVerifyResult is the charge state as reported by transaction/verify
// or carried inside a webhook event. Status "success" means settled.
type PaystackVerifyResult struct {
	ID              int64      `json:"id"`
	Status          string     `json:"status"`
	Reference       string     `json:"reference"`
	Amount          int64      `json:"amount"`
	Channel         string     `json:"channel"`
	GatewayResponse string     `json:"gateway_response"`
	PaidAt          *time.Time `json:"paid_at"`
}

// PaystackVerifyResponse is the transaction/verify response envelope
type PaystackVerifyResponse struct {
	Status  bool                 `json:"status"`
	Message string               `json:"message"`
	Data    PaystackVerifyResult `json:"data"`
}

// PaystackWebhookEvent is the webhook envelope; Event is e.g. "charge.success"
type PaystackWebhookEvent struct {
	Event string               `json:"event"`
	Data  PaystackVerifyResult `json:"data"`
}
