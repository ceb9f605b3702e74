package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	mailer    service.Mailer
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	PostRepo  repository.PostRepository
	UserRepo  repository.UserRepository
	Mailer    service.Mailer
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService creates a new order recording service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		postRepo:  params.PostRepo,
		userRepo:  params.UserRepo,
		mailer:    params.Mailer,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RecordPurchase appends a receipt for a verified payment event. The
// receipt is the source of truth; the confirmation emails and the order
// event are best-effort side effects that never fail the recording.
func (s *orderService) RecordPurchase(ctx context.Context, event *service.PaymentEvent) error {
	postID, err := uuid.Parse(event.PostID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("payment event carries an invalid post id")
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to find purchased post")
	}

	receipt := &entity.PurchaseReceipt{
		PostID:          post.ID,
		BuyerExternalID: event.BuyerExternalID,
		ProductName:     event.ProductName,
		ProductImage:    event.ProductImage,
		Amount:          event.Amount,
		Shipping:        event.Shipping,
		PaymentEventID:  event.EventID,
	}

	if err := s.postRepo.AddReceipt(ctx, receipt); err != nil {
		if errors.Is(err, repository.ErrDuplicateReceipt) {
			// Webhook replay: the order is already recorded.
			s.log(ctx).Info("Duplicate payment event ignored",
				slog.String("payment_event_id", event.EventID),
			)

			return nil
		}
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return err
	}

	s.sendOrderMails(ctx, event)
	s.publishOrderEvent(ctx, post, event)

	return nil
}

func (s *orderService) sendOrderMails(ctx context.Context, event *service.PaymentEvent) {
	buyerName := s.buyerName(ctx, event)

	if event.BuyerEmail != "" {
		if err := s.mailer.Send(ctx, buildOrderConfirmationMail(event.BuyerEmail, buyerName, event)); err != nil {
			s.log(ctx).Warn("Failed to send order confirmation mail",
				slog.String("payment_event_id", event.EventID),
				slog.String("error", err.Error()),
			)
		}
	}

	if event.OwnerEmail != "" {
		if err := s.mailer.Send(ctx, buildNewOrderMail(event.OwnerEmail, buyerName, event)); err != nil {
			s.log(ctx).Warn("Failed to send new order mail",
				slog.String("payment_event_id", event.EventID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// buyerName resolves the buyer's display name, falling back to their
// email when the local record is missing.
func (s *orderService) buyerName(ctx context.Context, event *service.PaymentEvent) string {
	buyer, err := s.userRepo.FindByExternalID(ctx, event.BuyerExternalID)
	if err != nil {
		return event.BuyerEmail
	}

	return displayName(buyer)
}

func (s *orderService) publishOrderEvent(ctx context.Context, post *entity.Post, event *service.PaymentEvent) {
	orderEvent := &service.OrderEvent{
		PaymentEventID:  event.EventID,
		PostID:          post.ID.String(),
		BuyerExternalID: event.BuyerExternalID,
		OwnerExternalID: post.OwnerExternalID,
		ProductName:     event.ProductName,
		Amount:          event.Amount,
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := s.publisher.PublishOrderEvent(ctx, orderEvent); err != nil {
		s.log(ctx).Warn("Failed to publish order event",
			slog.String("payment_event_id", event.EventID),
			slog.String("error", err.Error()),
		)
	}
}
