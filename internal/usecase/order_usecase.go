package usecase

import (
	"context"

	"bazaar/internal/domain/service"
)

// OrderUsecase defines the interface for recording completed purchases
// delivered by the payment provider's webhook.
type OrderUsecase interface {
	// RecordPurchase appends a receipt for a verified payment event,
	// sends the confirmation emails and publishes an order event.
	// Replays of an already-recorded event are a no-op.
	RecordPurchase(ctx context.Context, event *service.PaymentEvent) error
}
