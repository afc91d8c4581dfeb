package gateway

import (
	"context"
	"encoding/json"

	"github.com/karibustays/karibu/internal/pkg/constants"
	"github.com/karibustays/karibu/internal/pkg/models"
	natspkg "github.com/karibustays/karibu/internal/pkg/nats"
)

// NATSGateway publishes settlement facts to the message broker
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishPaymentSettled publishes a payment settlement event
func (g *NATSGateway) PublishPaymentSettled(ctx context.Context, ev *models.PaymentSettledEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectPaymentSettled, data)
}

// PublishBookingConfirmed publishes a booking confirmation event
func (g *NATSGateway) PublishBookingConfirmed(ctx context.Context, ev *models.BookingConfirmedEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectBookingConfirmed, data)
}
