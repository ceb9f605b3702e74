package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"go.uber.org/fx"
)

type checkoutService struct {
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Gateway service.PaymentGateway
	Logger  *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		gateway: params.Gateway,
		logger:  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateCheckoutSession validates the request and opens a hosted checkout
// session with the payment provider.
func (s *checkoutService) CreateCheckoutSession(ctx context.Context, input *service.CheckoutInput) (string, error) {
	if input.ProductName == "" || input.Amount <= 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("product name and a positive amount are required")
	}
	if input.PostID == "" || input.BuyerExternalID == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("post id and buyer id are required")
	}

	sessionID, err := s.gateway.CreateCheckoutSession(ctx, input)
	if err != nil {
		return "", err
	}

	s.log(ctx).Info("Checkout session opened",
		slog.String("session_id", sessionID),
		slog.String("post_id", input.PostID),
	)

	return sessionID, nil
}
