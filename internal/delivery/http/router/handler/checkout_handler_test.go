package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/service"
	mockUsecase "bazaar/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutTestContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCheckoutHandler_CreateCheckoutSession(t *testing.T) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	handler := &CheckoutHandler{
		checkoutUC: checkoutUC,
		logger:     newTestLogger(),
	}

	body := `{
		"name": "Handmade mug",
		"productImage": "https://cdn.example.com/product.png",
		"price": 25,
		"productBy": "seller",
		"details": "Hand thrown stoneware",
		"user": {
			"id": "user_2",
			"post": "5bfe9a3f-9d64-4f89-8b38-1cd6d6e79a75",
			"owner": "seller@example.com",
			"email": "buyer@example.com"
		}
	}`

	checkoutUC.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("*service.CheckoutInput")).
		Run(func(ctx context.Context, input *service.CheckoutInput) {
			assert.Equal(t, "5bfe9a3f-9d64-4f89-8b38-1cd6d6e79a75", input.PostID)
			assert.Equal(t, "user_2", input.BuyerExternalID)
			assert.Equal(t, "seller@example.com", input.OwnerEmail)
			assert.Equal(t, "seller", input.OwnerName)
			assert.Equal(t, 25.0, input.Amount)
		}).
		Return("cs_test_123", nil)

	c, rec := newCheckoutTestContext(body)
	require.NoError(t, handler.CreateCheckoutSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cs_test_123")
}

func TestCheckoutHandler_CreateCheckoutSession_MissingFields(t *testing.T) {
	handler := &CheckoutHandler{
		checkoutUC: mockUsecase.NewMockCheckoutUsecase(t),
		logger:     newTestLogger(),
	}

	c, rec := newCheckoutTestContext(`{"price": 25}`)
	require.NoError(t, handler.CreateCheckoutSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, HealthCheck(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
