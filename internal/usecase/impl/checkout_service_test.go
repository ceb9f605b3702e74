package impl

import (
	"context"
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	mockService "bazaar/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutInput() *service.CheckoutInput {
	return &service.CheckoutInput{
		PostID:          "5bfe9a3f-9d64-4f89-8b38-1cd6d6e79a75",
		BuyerExternalID: "user_2",
		BuyerEmail:      "buyer@example.com",
		OwnerEmail:      "seller@example.com",
		OwnerName:       "seller",
		ProductName:     "Handmade mug",
		Amount:          25,
	}
}

func TestCheckoutService_CreateCheckoutSession(t *testing.T) {
	gateway := mockService.NewMockPaymentGateway(t)
	service := NewCheckoutService(CheckoutServiceParams{
		Gateway: gateway,
		Logger:  newTestLogger(),
	})

	ctx := context.Background()
	input := checkoutInput()

	gateway.EXPECT().
		CreateCheckoutSession(ctx, input).
		Return("cs_test_123", nil)

	sessionID, err := service.CreateCheckoutSession(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", sessionID)
}

func TestCheckoutService_CreateCheckoutSession_MissingProduct(t *testing.T) {
	gateway := mockService.NewMockPaymentGateway(t)
	service := NewCheckoutService(CheckoutServiceParams{
		Gateway: gateway,
		Logger:  newTestLogger(),
	})

	input := checkoutInput()
	input.ProductName = ""

	_, err := service.CreateCheckoutSession(context.Background(), input)
	requireAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestCheckoutService_CreateCheckoutSession_GatewayFailure(t *testing.T) {
	gateway := mockService.NewMockPaymentGateway(t)
	service := NewCheckoutService(CheckoutServiceParams{
		Gateway: gateway,
		Logger:  newTestLogger(),
	})

	ctx := context.Background()
	input := checkoutInput()

	gateway.EXPECT().
		CreateCheckoutSession(ctx, input).
		Return("", domainerrors.ErrPaymentFailed)

	_, err := service.CreateCheckoutSession(ctx, input)
	requireAppErrorCode(t, err, "PAYMENT_FAILED")
}
