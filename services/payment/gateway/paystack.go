package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	httpclient "github.com/karibustays/karibu/internal/pkg/http"
	"github.com/karibustays/karibu/internal/pkg/logger"
	"github.com/karibustays/karibu/internal/pkg/models"
)

// PaystackGateway implements the Paystack charge adapter
type PaystackGateway struct {
	cfg    *models.PaystackConfig
	client *httpclient.Client
}

// NewPaystackGateway creates a new Paystack gateway
func NewPaystackGateway(cfg *models.PaystackConfig) *PaystackGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	return &PaystackGateway{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.BaseURL, timeout, httpclient.WithBearerToken(cfg.SecretKey)),
	}
}

// Initiate creates a charge and returns the reference plus the hosted
// checkout URL the payer completes the charge on
func (g *PaystackGateway) Initiate(ctx context.Context, req *models.GatewayInitiateRequest) (*models.GatewayInitiateResult, error) {
	initReq := &models.PaystackInitializeRequest{
		Email:       req.Email,
		Amount:      req.Amount,
		CallbackURL: g.cfg.CallbackURL,
	}

	var initResp models.PaystackInitializeResponse
	if err := g.client.PostJSON(ctx, "/transaction/initialize", initReq, &initResp); err != nil {
		return nil, fmt.Errorf("paystack initialize failed: %w", err)
	}
	if !initResp.Status {
		return nil, fmt.Errorf("paystack initialize rejected: %s", initResp.Message)
	}
	if initResp.Data.Reference == "" {
		return nil, fmt.Errorf("paystack initialize returned no reference")
	}

	logger.InfoCtx(ctx, "Paystack charge initialized",
		logger.String("reference", initResp.Data.Reference))

	return &models.GatewayInitiateResult{
		ProviderReference: initResp.Data.Reference,
		AuthorizationURL:  initResp.Data.AuthorizationURL,
	}, nil
}

// Verify pulls the authoritative charge state from Paystack. Safe to call
// repeatedly for the same reference. A charge still in flight returns
// (nil, nil) so the caller leaves the payment pending.
func (g *PaystackGateway) Verify(ctx context.Context, reference string) (*models.ReconciliationEvent, error) {
	var verifyResp models.PaystackVerifyResponse
	endpoint := "/transaction/verify/" + url.PathEscape(reference)
	if err := g.client.GetJSON(ctx, endpoint, &verifyResp); err != nil {
		return nil, fmt.Errorf("paystack verify failed: %w", err)
	}
	if !verifyResp.Status {
		return nil, fmt.Errorf("paystack verify rejected: %s", verifyResp.Message)
	}

	if !paystackTerminal(verifyResp.Data.Status) {
		return nil, nil
	}

	return normalizePaystackResult(&verifyResp.Data), nil
}

// paystackTerminal reports whether a charge status is final on the provider
// side. Pending and ongoing charges may still settle either way.
func paystackTerminal(status string) bool {
	switch status {
	case "success", "failed", "abandoned", "reversed":
		return true
	}
	return false
}

// NormalizeWebhook maps a charge webhook onto a reconciliation event. Events
// that are not charge outcomes return (nil, nil) and are acknowledged
// without side effects.
func (g *PaystackGateway) NormalizeWebhook(ev *models.PaystackWebhookEvent) (*models.ReconciliationEvent, error) {
	if !strings.HasPrefix(ev.Event, "charge.") {
		return nil, nil
	}
	if ev.Data.Reference == "" {
		return nil, fmt.Errorf("charge webhook missing reference")
	}

	return normalizePaystackResult(&ev.Data), nil
}

func normalizePaystackResult(data *models.PaystackVerifyResult) *models.ReconciliationEvent {
	ev := &models.ReconciliationEvent{
		Provider:  models.PaymentMethodPaystack,
		Reference: data.Reference,
		Success:   data.Status == "success",
		Amount:    data.Amount,
	}
	if ev.Success {
		ev.ProviderTransactionID = strconv.FormatInt(data.ID, 10)
		ev.PaidAt = data.PaidAt
	} else {
		ev.Reason = data.GatewayResponse
		if ev.Reason == "" {
			ev.Reason = data.Status
		}
	}

	return ev
}
