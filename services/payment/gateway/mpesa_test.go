package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibustays/karibu/internal/pkg/constants"
	"github.com/karibustays/karibu/internal/pkg/database"
	"github.com/karibustays/karibu/internal/pkg/models"
)

func setupMpesaGatewayTest(t *testing.T, handler http.HandlerFunc) (*MpesaGateway, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	redisClient := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	cfg := &models.MpesaConfig{
		BaseURL:        server.URL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		PassKey:        "passkey",
		ShortCode:      "174379",
		CallbackURL:    "https://example.com/v1/payments/mpesa/callback",
		TimeoutSeconds: 5,
	}

	return NewMpesaGateway(cfg, redisClient), mr
}

func TestMpesaInitiate(t *testing.T) {
	var tokenCalls int

	gw, mr := setupMpesaGatewayTest(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/oauth/v1/generate"):
			tokenCalls++
			assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Basic "))
			json.NewEncoder(w).Encode(models.MpesaTokenResponse{
				AccessToken: "token-abc",
				ExpiresIn:   "3599",
			})
		case r.URL.Path == "/mpesa/stkpush/v1/processrequest":
			assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

			var push models.STKPushRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&push))
			assert.Equal(t, "174379", push.BusinessShortCode)
			assert.Equal(t, "CustomerPayBillOnline", push.TransactionType)
			assert.Equal(t, "254712345678", push.PhoneNumber)
			assert.NotEmpty(t, push.Password)
			assert.Len(t, push.Timestamp, 14)

			json.NewEncoder(w).Encode(models.STKPushResponse{
				MerchantRequestID:   "mr-1",
				CheckoutRequestID:   "ws_CO_123",
				ResponseCode:        "0",
				ResponseDescription: "Success",
				CustomerMessage:     "Enter your PIN",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	req := &models.GatewayInitiateRequest{
		BookingID: uuid.New(),
		Amount:    250000,
		Phone:     "254712345678",
	}

	result, err := gw.Initiate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_123", result.ProviderReference)
	assert.Equal(t, "Enter your PIN", result.CustomerMessage)

	// Token is cached, a second initiation must not refetch it
	cached, err := mr.Get(constants.KeyMpesaAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", cached)

	_, err = gw.Initiate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
}

func TestMpesaInitiate_Rejected(t *testing.T) {
	gw, _ := setupMpesaGatewayTest(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/oauth/v1/generate") {
			json.NewEncoder(w).Encode(models.MpesaTokenResponse{AccessToken: "t", ExpiresIn: "3599"})
			return
		}
		json.NewEncoder(w).Encode(models.STKPushResponse{
			ResponseCode:        "1",
			ResponseDescription: "Invalid shortcode",
		})
	})

	result, err := gw.Initiate(context.Background(), &models.GatewayInitiateRequest{
		BookingID: uuid.New(),
		Amount:    100,
		Phone:     "254712345678",
	})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestMpesaNormalizeCallback(t *testing.T) {
	gw, _ := setupMpesaGatewayTest(t, func(w http.ResponseWriter, r *http.Request) {})

	t.Run("Success Callback", func(t *testing.T) {
		payload := `{
			"Body": {
				"stkCallback": {
					"MerchantRequestID": "mr-1",
					"CheckoutRequestID": "ws_CO_123",
					"ResultCode": 0,
					"ResultDesc": "The service request is processed successfully.",
					"CallbackMetadata": {
						"Item": [
							{"Name": "Amount", "Value": 2500.00},
							{"Name": "MpesaReceiptNumber", "Value": "RCPT001"},
							{"Name": "PhoneNumber", "Value": 254712345678}
						]
					}
				}
			}
		}`

		var cb models.MpesaCallback
		require.NoError(t, json.Unmarshal([]byte(payload), &cb))

		ev, err := gw.NormalizeCallback(&cb)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentMethodMpesa, ev.Provider)
		assert.Equal(t, "ws_CO_123", ev.Reference)
		assert.True(t, ev.Success)
		assert.Equal(t, "RCPT001", ev.ProviderTransactionID)
		assert.Equal(t, int64(2500), ev.Amount)
		assert.NotNil(t, ev.PaidAt)
	})

	t.Run("Failure Callback Has No Metadata", func(t *testing.T) {
		payload := `{
			"Body": {
				"stkCallback": {
					"MerchantRequestID": "mr-1",
					"CheckoutRequestID": "ws_CO_123",
					"ResultCode": 1032,
					"ResultDesc": "Request cancelled by user"
				}
			}
		}`

		var cb models.MpesaCallback
		require.NoError(t, json.Unmarshal([]byte(payload), &cb))

		ev, err := gw.NormalizeCallback(&cb)
		require.NoError(t, err)
		assert.False(t, ev.Success)
		assert.Equal(t, "Request cancelled by user", ev.Reason)
		assert.Empty(t, ev.ProviderTransactionID)
	})

	t.Run("Missing Reference Rejected", func(t *testing.T) {
		ev, err := gw.NormalizeCallback(&models.MpesaCallback{})
		assert.Error(t, err)
		assert.Nil(t, ev)
	})
}
