package models

import "encoding/json"

// MpesaTokenResponse is the Daraja OAuth client-credentials response.
// ExpiresIn arrives as a quoted string.
type MpesaTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// STKPushRequest is the Daraja STK push (process request) payload
type STKPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// STKPushResponse is the synchronous Daraja response to an STK push.
// CheckoutRequestID is the correlation reference the asynchronous callback
// will carry back.
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// MpesaCallback is the asynchronous STK push result webhook body
type MpesaCallback struct {
	Body struct {
		StkCallback StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

// StkCallback is the nested callback payload. ResultCode 0 means the payer
// completed the prompt and the money moved.
type StkCallback struct {
	MerchantRequestID string            `json:"MerchantRequestID"`
	CheckoutRequestID string            `json:"CheckoutRequestID"`
	ResultCode        int               `json:"ResultCode"`
	ResultDesc        string            `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata,omitempty"`
}

// CallbackMetadata holds the success-only item list (amount, receipt, phone)
type CallbackMetadata struct {
	Item []CallbackItem `json:"Item"`
}

// CallbackItem is a single name/value metadata entry. Values are
// heterogeneous (strings and numbers), so they are kept raw and accessed
// through typed helpers.
type CallbackItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value,omitempty"`
}

// ReceiptNumber extracts the MpesaReceiptNumber metadata item, or ""
func (c *StkCallback) ReceiptNumber() string {
	return c.stringItem("MpesaReceiptNumber")
}

// Amount extracts the Amount metadata item, or 0
func (c *StkCallback) Amount() int64 {
	if c.CallbackMetadata == nil {
		return 0
	}
	for _, item := range c.CallbackMetadata.Item {
		if item.Name != "Amount" || len(item.Value) == 0 {
			continue
		}
		var v float64
		if err := json.Unmarshal(item.Value, &v); err == nil {
			return int64(v)
		}
	}
	return 0
}

func (c *StkCallback) stringItem(name string) string {
	if c.CallbackMetadata == nil {
		return ""
	}
	for _, item := range c.CallbackMetadata.Item {
		if item.Name != name || len(item.Value) == 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(item.Value, &s); err == nil {
			return s
		}
	}
	return ""
}

// MpesaCallbackAck is the acknowledgment Daraja expects from the webhook.
// It is always ResultCode 0 regardless of internal outcome to keep the
// provider from retry-storming.
type MpesaCallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}
