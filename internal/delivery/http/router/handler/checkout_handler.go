package handler

import (
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

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for payment checkout handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutBuyer identifies the purchasing user and the post being bought.
type CheckoutBuyer struct {
	ID    string `json:"id" validate:"required"`
	Post  string `json:"post" validate:"required,uuid"`
	Owner string `json:"owner" validate:"required,email"`
	Email string `json:"email" validate:"required,email"`
}

// CreateCheckoutSessionRequest represents the request body for starting
// a hosted checkout session.
type CreateCheckoutSessionRequest struct {
	Name         string        `json:"name" validate:"required"`
	ProductImage string        `json:"productImage"`
	Price        float64       `json:"price" validate:"required,gt=0"`
	ProductBy    string        `json:"productBy"`
	Details      string        `json:"details"`
	User         CheckoutBuyer `json:"user" validate:"required"`
}

// CreateCheckoutSession handles opening a hosted checkout session and
// returns its id for the client-side redirect.
func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	var req CreateCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &service.CheckoutInput{
		PostID:          req.User.Post,
		BuyerExternalID: req.User.ID,
		BuyerEmail:      req.User.Email,
		OwnerEmail:      req.User.Owner,
		OwnerName:       req.ProductBy,
		ProductName:     req.Name,
		ProductImage:    req.ProductImage,
		Details:         req.Details,
		Amount:          req.Price,
	}

	sessionID, err := h.checkoutUC.CreateCheckoutSession(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": sessionID}, "Checkout session created")
}

func (h *CheckoutHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
