package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	OrderUC    usecase.OrderUsecase
	Gateway    service.PaymentGateway
	Logger     *slog.Logger
}

// WebhookHandler holds dependencies for the identity and payment webhooks.
// Both endpoints consume the raw request body: the payment webhook needs
// the exact bytes for signature verification, and the identity provider
// posts an envelope that is parsed by hand.
type WebhookHandler struct {
	identityUC usecase.IdentityUsecase
	orderUC    usecase.OrderUsecase
	gateway    service.PaymentGateway
	logger     *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		identityUC: params.IdentityUC,
		orderUC:    params.OrderUC,
		gateway:    params.Gateway,
		logger:     params.Logger,
	}
}

// identityEnvelope mirrors the identity provider's webhook payload.
type identityEnvelope struct {
	Type string `json:"type"`
	Data struct {
		ID              string `json:"id"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		UserName        string `json:"username"`
		ProfileImageURL string `json:"profile_image_url"`
		EmailAddresses  []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// HandleIdentityEvent applies one identity-provider event to the local
// user store. Storage failures are swallowed downstream so the provider
// never retries on our behalf; only a malformed payload is rejected.
func (h *WebhookHandler) HandleIdentityEvent(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read webhook body")
	}

	var envelope identityEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	event := &usecase.IdentityEvent{
		Kind: usecase.IdentityEventKind(envelope.Type),
		Profile: usecase.IdentityProfile{
			ExternalID: envelope.Data.ID,
			FirstName:  envelope.Data.FirstName,
			LastName:   envelope.Data.LastName,
			UserName:   envelope.Data.UserName,
			AvatarURL:  envelope.Data.ProfileImageURL,
		},
	}
	if len(envelope.Data.EmailAddresses) > 0 {
		event.Profile.Email = envelope.Data.EmailAddresses[0].EmailAddress
	}

	if err := h.identityUC.HandleEvent(c.Request().Context(), event); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	return response.Success(c, http.StatusOK, nil, "Webhook processed successfully")
}

// HandlePaymentEvent verifies and records a payment-provider event. The
// raw body and the Stripe-Signature header are handed to the gateway;
// unhandled event types are acknowledged without side effects.
func (h *WebhookHandler) HandlePaymentEvent(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read webhook body")
	}

	event, err := h.gateway.ParseWebhookEvent(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	if event == nil {
		return response.Success(c, http.StatusOK, map[string]bool{"received": true}, "Event ignored")
	}

	if err := h.orderUC.RecordPurchase(c.Request().Context(), event); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"received": true}, "Webhook processed successfully")
}

func (h *WebhookHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
