package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/karibustays/karibu/internal/pkg/constants"
	"github.com/karibustays/karibu/internal/pkg/database"
	httpclient "github.com/karibustays/karibu/internal/pkg/http"
	"github.com/karibustays/karibu/internal/pkg/logger"
	"github.com/karibustays/karibu/internal/pkg/models"
)

const mpesaTimestampLayout = "20060102150405"

// MpesaGateway implements the Daraja STK push adapter
type MpesaGateway struct {
	cfg         *models.MpesaConfig
	redisClient *database.RedisClient

	authClient *httpclient.Client
	apiTimeout time.Duration
}

// NewMpesaGateway creates a new Daraja gateway
func NewMpesaGateway(cfg *models.MpesaConfig, redisClient *database.RedisClient) *MpesaGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	basic := base64.StdEncoding.EncodeToString([]byte(cfg.ConsumerKey + ":" + cfg.ConsumerSecret))

	return &MpesaGateway{
		cfg:         cfg,
		redisClient: redisClient,
		authClient:  httpclient.NewClient(cfg.BaseURL, timeout, httpclient.WithAuthorization("Basic "+basic)),
		apiTimeout:  timeout,
	}
}

// accessToken returns a valid Daraja bearer token, serving from Redis while
// the cached token is still inside its safety margin
func (g *MpesaGateway) accessToken(ctx context.Context) (string, error) {
	token, err := g.redisClient.Get(ctx, constants.KeyMpesaAccessToken)
	if err == nil && token != "" {
		return token, nil
	}
	if err != nil && err != redis.Nil {
		// Redis being down must not block payments, fall through to the provider
		logger.WarnCtx(ctx, "Token cache lookup failed, fetching fresh token",
			logger.ErrorField(err))
	}

	var tokenResp models.MpesaTokenResponse
	if err := g.authClient.GetJSON(ctx, "/oauth/v1/generate?grant_type=client_credentials", &tokenResp); err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("provider returned an empty access token")
	}

	expiresIn, convErr := strconv.Atoi(tokenResp.ExpiresIn)
	if convErr != nil || expiresIn <= 0 {
		expiresIn = 3600
	}
	ttl := time.Duration(expiresIn)*time.Second - constants.MpesaTokenSafetyMargin
	if ttl > 0 {
		if err := g.redisClient.Set(ctx, constants.KeyMpesaAccessToken, tokenResp.AccessToken, ttl); err != nil {
			logger.WarnCtx(ctx, "Failed to cache access token",
				logger.ErrorField(err))
		}
	}

	return tokenResp.AccessToken, nil
}

// Initiate triggers an STK push prompt on the payer's phone. The returned
// reference is the CheckoutRequestID the asynchronous callback will carry.
func (g *MpesaGateway) Initiate(ctx context.Context, req *models.GatewayInitiateRequest) (*models.GatewayInitiateResult, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format(mpesaTimestampLayout)
	password := base64.StdEncoding.EncodeToString([]byte(g.cfg.ShortCode + g.cfg.PassKey + timestamp))

	accountRef := req.AccountReference
	if accountRef == "" {
		accountRef = req.BookingID.String()
	}
	desc := req.TransactionDesc
	if desc == "" {
		desc = "Room booking payment"
	}

	pushReq := &models.STKPushRequest{
		BusinessShortCode: g.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            strconv.FormatInt(req.Amount, 10),
		PartyA:            req.Phone,
		PartyB:            g.cfg.ShortCode,
		PhoneNumber:       req.Phone,
		CallBackURL:       g.cfg.CallbackURL,
		AccountReference:  accountRef,
		TransactionDesc:   desc,
	}

	client := httpclient.NewClient(g.cfg.BaseURL, g.apiTimeout, httpclient.WithBearerToken(token))

	var pushResp models.STKPushResponse
	if err := client.PostJSON(ctx, "/mpesa/stkpush/v1/processrequest", pushReq, &pushResp); err != nil {
		return nil, fmt.Errorf("stk push request failed: %w", err)
	}
	if pushResp.ResponseCode != "0" {
		return nil, fmt.Errorf("stk push rejected: %s", pushResp.ResponseDescription)
	}
	if pushResp.CheckoutRequestID == "" {
		return nil, fmt.Errorf("stk push accepted without a checkout request id")
	}

	logger.InfoCtx(ctx, "STK push accepted",
		logger.String("checkout_request_id", pushResp.CheckoutRequestID),
		logger.String("merchant_request_id", pushResp.MerchantRequestID))

	return &models.GatewayInitiateResult{
		ProviderReference: pushResp.CheckoutRequestID,
		CustomerMessage:   pushResp.CustomerMessage,
	}, nil
}

// NormalizeCallback maps the STK callback onto a reconciliation event
func (g *MpesaGateway) NormalizeCallback(cb *models.MpesaCallback) (*models.ReconciliationEvent, error) {
	stk := cb.Body.StkCallback
	if stk.CheckoutRequestID == "" {
		return nil, fmt.Errorf("callback missing checkout request id")
	}

	ev := &models.ReconciliationEvent{
		Provider:  models.PaymentMethodMpesa,
		Reference: stk.CheckoutRequestID,
		Success:   stk.ResultCode == 0,
	}
	if ev.Success {
		ev.ProviderTransactionID = stk.ReceiptNumber()
		ev.Amount = stk.Amount()
		now := time.Now()
		ev.PaidAt = &now
	} else {
		ev.Reason = stk.ResultDesc
	}

	return ev, nil
}
