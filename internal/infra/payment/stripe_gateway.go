// Package payment implements the PaymentGateway interface with Stripe
// hosted checkout.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/fx"
)

// Metadata keys attached to the checkout session. The completion webhook
// reads the same keys back, so both sides live in this package.
const (
	metaBuyerID      = "userId"
	metaPostID       = "postId"
	metaOwnerEmail   = "ownerEmail"
	metaOwnerName    = "ownerName"
	metaBuyerEmail   = "userEmail"
	metaAmount       = "amount"
	metaProductImage = "productImage"
	metaProductName  = "productName"
)

type stripeGateway struct {
	webhookSecret string
	successURL    string
	cancelURL     string
	logger        *slog.Logger
}

// Params holds dependencies for the Stripe gateway, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewStripeGateway configures the Stripe client and returns a PaymentGateway.
func NewStripeGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Stripe
	if cfg == nil || cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}

	stripe.Key = cfg.SecretKey

	return &stripeGateway{
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
		logger:        params.Logger,
	}, nil
}

// CreateCheckoutSession opens a hosted checkout session for one product.
// Shipping is collected by Stripe with a flat standard or express rate.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, input *service.CheckoutInput) (string, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(g.successURL),
		CancelURL:          stripe.String(g.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(input.ProductName),
						Images:      stripe.StringSlice([]string{input.ProductImage}),
						Description: stripe.String(fmt.Sprintf("Product by %s: %s", input.OwnerName, input.Details)),
					},
					// Stripe expects the amount in cents.
					UnitAmount: stripe.Int64(int64(input.Amount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{"US", "CA", "GB", "DE", "FR", "IN", "JP", "AU", "TW"}),
		},
		ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{
			shippingOption("Standard Shipping", 500, 5, 7),
			shippingOption("Express Shipping", 1500, 1, 3),
		},
	}
	sessionParams.Context = ctx

	sessionParams.AddMetadata(metaBuyerID, input.BuyerExternalID)
	sessionParams.AddMetadata(metaPostID, input.PostID)
	sessionParams.AddMetadata(metaOwnerEmail, input.OwnerEmail)
	sessionParams.AddMetadata(metaOwnerName, input.OwnerName)
	sessionParams.AddMetadata(metaBuyerEmail, input.BuyerEmail)
	sessionParams.AddMetadata(metaAmount, strconv.FormatFloat(input.Amount, 'f', -1, 64))
	sessionParams.AddMetadata(metaProductImage, input.ProductImage)
	sessionParams.AddMetadata(metaProductName, input.ProductName)

	checkoutSession, err := session.New(sessionParams)
	if err != nil {
		return "", domainerrors.ErrPaymentFailed.WrapMessage(err.Error())
	}

	g.logger.Info("Checkout session created",
		slog.String("session_id", checkoutSession.ID),
		slog.String("post_id", input.PostID),
	)

	return checkoutSession.ID, nil
}

// ParseWebhookEvent verifies the signature and extracts a completed
// payment. Event types other than checkout.session.completed yield
// (nil, nil).
func (g *stripeGateway) ParseWebhookEvent(payload []byte, signature string) (*service.PaymentEvent, error) {
	if g.webhookSecret == "" {
		return nil, domainerrors.ErrWebhookSecretMissing
	}

	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, domainerrors.ErrWebhookSignature.WrapMessage(err.Error())
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		g.logger.Debug("Ignoring payment event",
			slog.String("event_type", string(event.Type)),
		)

		return nil, nil
	}

	var checkoutSession stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
		return nil, errors.Wrap(err, "failed to decode checkout session")
	}

	amount, err := strconv.ParseFloat(checkoutSession.Metadata[metaAmount], 64)
	if err != nil {
		g.logger.Warn("Checkout session carries no parsable amount",
			slog.String("event_id", event.ID),
		)
		amount = 0
	}

	paymentEvent := &service.PaymentEvent{
		EventID:         event.ID,
		PostID:          checkoutSession.Metadata[metaPostID],
		BuyerExternalID: checkoutSession.Metadata[metaBuyerID],
		BuyerEmail:      checkoutSession.Metadata[metaBuyerEmail],
		OwnerEmail:      checkoutSession.Metadata[metaOwnerEmail],
		OwnerName:       checkoutSession.Metadata[metaOwnerName],
		ProductName:     checkoutSession.Metadata[metaProductName],
		ProductImage:    checkoutSession.Metadata[metaProductImage],
		Amount:          amount,
	}

	if checkoutSession.TotalDetails != nil {
		paymentEvent.ShippingCost = float64(checkoutSession.TotalDetails.AmountShipping) / 100
	}

	if info := checkoutSession.CollectedInformation; info != nil && info.ShippingDetails != nil && info.ShippingDetails.Address != nil {
		addr := info.ShippingDetails.Address
		paymentEvent.Shipping = entity.ShippingAddress{
			Line1:      addr.Line1,
			Line2:      addr.Line2,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		}
	}

	return paymentEvent, nil
}

func shippingOption(name string, amountCents, minDays, maxDays int64) *stripe.CheckoutSessionShippingOptionParams {
	return &stripe.CheckoutSessionShippingOptionParams{
		ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
			Type:        stripe.String("fixed_amount"),
			DisplayName: stripe.String(name),
			FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
				Amount:   stripe.Int64(amountCents),
				Currency: stripe.String(string(stripe.CurrencyUSD)),
			},
			DeliveryEstimate: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
				Minimum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
					Unit:  stripe.String("business_day"),
					Value: stripe.Int64(minDays),
				},
				Maximum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
					Unit:  stripe.String("business_day"),
					Value: stripe.Int64(maxDays),
				},
			},
		},
	}
}
