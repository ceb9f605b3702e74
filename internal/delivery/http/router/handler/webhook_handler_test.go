package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	mockService "bazaar/internal/mocks/service"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newWebhookTestContext(body string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestWebhookHandler_HandleIdentityEvent(t *testing.T) {
	identityUC := mockUsecase.NewMockIdentityUsecase(t)
	handler := &WebhookHandler{
		identityUC: identityUC,
		logger:     newTestLogger(),
	}

	payload := `{
		"type": "user.created",
		"data": {
			"id": "user_1",
			"first_name": "Test",
			"last_name": "User",
			"username": "tester",
			"profile_image_url": "https://cdn.example.com/avatar.png",
			"email_addresses": [{"email_address": "tester@example.com"}]
		}
	}`

	identityUC.EXPECT().
		HandleEvent(mock.Anything, mock.AnythingOfType("*usecase.IdentityEvent")).
		Run(func(ctx context.Context, event *usecase.IdentityEvent) {
			assert.Equal(t, usecase.IdentityUserCreated, event.Kind)
			assert.Equal(t, "user_1", event.Profile.ExternalID)
			assert.Equal(t, "tester@example.com", event.Profile.Email)
			assert.Equal(t, "https://cdn.example.com/avatar.png", event.Profile.AvatarURL)
		}).
		Return(nil)

	c, rec := newWebhookTestContext(payload, nil)
	require.NoError(t, handler.HandleIdentityEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Webhook processed successfully")
}

func TestWebhookHandler_HandleIdentityEvent_InvalidJSON(t *testing.T) {
	handler := &WebhookHandler{
		identityUC: mockUsecase.NewMockIdentityUsecase(t),
		logger:     newTestLogger(),
	}

	c, rec := newWebhookTestContext("{not json", nil)
	require.NoError(t, handler.HandleIdentityEvent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookHandler_HandlePaymentEvent(t *testing.T) {
	gateway := mockService.NewMockPaymentGateway(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	handler := &WebhookHandler{
		orderUC: orderUC,
		gateway: gateway,
		logger:  newTestLogger(),
	}

	event := &service.PaymentEvent{
		EventID: "evt_123",
		PostID:  "5bfe9a3f-9d64-4f89-8b38-1cd6d6e79a75",
	}

	gateway.EXPECT().
		ParseWebhookEvent([]byte(`{"id":"evt_123"}`), "sig_header").
		Return(event, nil)

	orderUC.EXPECT().
		RecordPurchase(mock.Anything, event).
		Return(nil)

	c, rec := newWebhookTestContext(`{"id":"evt_123"}`, map[string]string{"Stripe-Signature": "sig_header"})
	require.NoError(t, handler.HandlePaymentEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "received")
}

func TestWebhookHandler_HandlePaymentEvent_IgnoredEventType(t *testing.T) {
	gateway := mockService.NewMockPaymentGateway(t)
	handler := &WebhookHandler{
		orderUC: mockUsecase.NewMockOrderUsecase(t),
		gateway: gateway,
		logger:  newTestLogger(),
	}

	gateway.EXPECT().
		ParseWebhookEvent(mock.AnythingOfType("[]uint8"), "sig_header").
		Return(nil, nil)

	c, rec := newWebhookTestContext(`{"type":"payment_intent.created"}`, map[string]string{"Stripe-Signature": "sig_header"})
	require.NoError(t, handler.HandlePaymentEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_HandlePaymentEvent_BadSignature(t *testing.T) {
	gateway := mockService.NewMockPaymentGateway(t)
	handler := &WebhookHandler{
		orderUC: mockUsecase.NewMockOrderUsecase(t),
		gateway: gateway,
		logger:  newTestLogger(),
	}

	gateway.EXPECT().
		ParseWebhookEvent(mock.AnythingOfType("[]uint8"), "bad_sig").
		Return(nil, domainerrors.ErrWebhookSignature)

	c, rec := newWebhookTestContext(`{}`, map[string]string{"Stripe-Signature": "bad_sig"})
	require.NoError(t, handler.HandlePaymentEvent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "WEBHOOK_SIGNATURE_INVALID")
}
