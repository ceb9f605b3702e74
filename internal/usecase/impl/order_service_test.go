package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order recording tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	postRepo  *mockRepo.MockPostRepository
	userRepo  *mockRepo.MockUserRepository
	mailer    *mockService.MockMailer
	publisher *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mailer := mockService.NewMockMailer(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		PostRepo:  postRepo,
		UserRepo:  userRepo,
		Mailer:    mailer,
		Publisher: publisher,
		Logger:    newTestLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		postRepo:  postRepo,
		userRepo:  userRepo,
		mailer:    mailer,
		publisher: publisher,
	}
}

func paymentEvent(postID uuid.UUID) *service.PaymentEvent {
	return &service.PaymentEvent{
		EventID:         "evt_123",
		PostID:          postID.String(),
		BuyerExternalID: "user_2",
		BuyerEmail:      "buyer@example.com",
		OwnerEmail:      "seller@example.com",
		OwnerName:       "seller",
		ProductName:     "Handmade mug",
		ProductImage:    "https://cdn.example.com/product.png",
		Amount:          25,
		ShippingCost:    5,
		Shipping: entity.ShippingAddress{
			Line1:      "1 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62701",
			Country:    "US",
		},
	}
}

func TestOrderService_RecordPurchase(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	postID := uuid.New()
	event := paymentEvent(postID)
	post := &entity.Post{ID: postID, OwnerExternalID: "user_1"}

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(post, nil)

	fx.postRepo.EXPECT().
		AddReceipt(ctx, mock.AnythingOfType("*entity.PurchaseReceipt")).
		Run(func(ctx context.Context, receipt *entity.PurchaseReceipt) {
			assert.Equal(t, "evt_123", receipt.PaymentEventID)
			assert.Equal(t, "user_2", receipt.BuyerExternalID)
			assert.Equal(t, 25.0, receipt.Amount)
		}).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_2").
		Return(testUser("user_2", "buyer", "buyer@example.com"), nil)

	// One mail to the buyer, one to the owner.
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.MailMessage")).
		Return(nil).
		Times(2)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, orderEvent *service.OrderEvent) {
			assert.Equal(t, "evt_123", orderEvent.PaymentEventID)
			assert.Equal(t, "user_1", orderEvent.OwnerExternalID)
		}).
		Return(nil)

	err := fx.service.RecordPurchase(ctx, event)
	require.NoError(t, err)
}

func TestOrderService_RecordPurchase_ReplayIsNoOp(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	postID := uuid.New()
	event := paymentEvent(postID)

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID, OwnerExternalID: "user_1"}, nil)

	// A replayed event is acknowledged without mails or a publish.
	fx.postRepo.EXPECT().
		AddReceipt(ctx, mock.AnythingOfType("*entity.PurchaseReceipt")).
		Return(repository.ErrDuplicateReceipt)

	err := fx.service.RecordPurchase(ctx, event)
	require.NoError(t, err)
}

func TestOrderService_RecordPurchase_PostNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(nil, repository.ErrPostNotFound)

	err := fx.service.RecordPurchase(ctx, paymentEvent(postID))
	requireAppErrorCode(t, err, "POST_NOT_FOUND")
}

func TestOrderService_RecordPurchase_InvalidPostID(t *testing.T) {
	fx := createTestOrderService(t)

	event := paymentEvent(uuid.New())
	event.PostID = "not-a-uuid"

	err := fx.service.RecordPurchase(context.Background(), event)
	requireAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestOrderService_RecordPurchase_SideEffectFailuresTolerated(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	postID := uuid.New()
	event := paymentEvent(postID)

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID, OwnerExternalID: "user_1"}, nil)

	fx.postRepo.EXPECT().
		AddReceipt(ctx, mock.AnythingOfType("*entity.PurchaseReceipt")).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_2").
		Return(nil, repository.ErrUserNotFound)

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.MailMessage")).
		Return(errors.New("smtp down")).
		Times(2)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker down"))

	// The receipt is recorded; every side effect failure is swallowed.
	err := fx.service.RecordPurchase(ctx, event)
	require.NoError(t, err)
}
