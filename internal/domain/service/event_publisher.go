package service

import (
	"context"
)

// OrderEvent represents a recorded purchase published for downstream consumers
type OrderEvent struct {
	RequestID       string  `json:"request_id,omitempty"` // For distributed tracing
	PaymentEventID  string  `json:"payment_event_id"`
	PostID          string  `json:"post_id"`
	BuyerExternalID string  `json:"buyer_external_id"`
	OwnerExternalID string  `json:"owner_external_id"`
	ProductName     string  `json:"product_name"`
	Amount          float64 `json:"amount"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order-recorded event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
