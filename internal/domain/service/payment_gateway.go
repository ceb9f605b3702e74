package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// CheckoutInput carries everything the payment provider needs to build a
// hosted checkout session. The identifying fields travel as session
// metadata so the completion webhook can record the order.
type CheckoutInput struct {
	PostID          string
	BuyerExternalID string
	BuyerEmail      string
	OwnerEmail      string
	OwnerName       string
	ProductName     string
	ProductImage    string
	Details         string
	Amount          float64
}

// PaymentEvent is a verified, completed payment extracted from a provider
// webhook. EventID is the provider's event id and acts as the idempotency
// key for order recording.
type PaymentEvent struct {
	EventID         string
	PostID          string
	BuyerExternalID string
	BuyerEmail      string
	OwnerEmail      string
	OwnerName       string
	ProductName     string
	ProductImage    string
	Amount          float64
	ShippingCost    float64
	Shipping        entity.ShippingAddress
}

// PaymentGateway defines the interface for the hosted-checkout payment
// provider.
type PaymentGateway interface {
	// CreateCheckoutSession opens a hosted checkout session and returns
	// its id for the frontend to redirect to.
	CreateCheckoutSession(ctx context.Context, input *CheckoutInput) (string, error)

	// ParseWebhookEvent verifies the webhook signature and extracts a
	// PaymentEvent. It returns (nil, nil) for event types that carry no
	// completed payment.
	ParseWebhookEvent(payload []byte, signature string) (*PaymentEvent, error)
}
