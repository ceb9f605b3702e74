package usecase

import (
	"context"

	"bazaar/internal/domain/service"
)

// CheckoutUsecase defines the interface for starting a payment session.
type CheckoutUsecase interface {
	// CreateCheckoutSession validates the request and opens a hosted
	// checkout session, returning its id.
	CreateCheckoutSession(ctx context.Context, input *service.CheckoutInput) (string, error)
}
