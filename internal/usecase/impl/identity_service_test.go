package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity sync tests.
type identityServiceFixtures struct {
	service   usecase.IdentityUsecase
	userRepo  *mockRepo.MockUserRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewIdentityService(IdentityServiceParams{
		UserRepo:  userRepo,
		TxManager: txManager,
		Logger:    newTestLogger(),
	})

	return identityServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

func identityEvent(kind usecase.IdentityEventKind, externalID string) *usecase.IdentityEvent {
	return &usecase.IdentityEvent{
		Kind: kind,
		Profile: usecase.IdentityProfile{
			ExternalID: externalID,
			FirstName:  "Test",
			LastName:   "User",
			UserName:   "tester",
			Email:      "tester@example.com",
		},
	}
}

func TestIdentityService_HandleEvent_Created(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "user_1", user.ExternalID)
			assert.Equal(t, "tester@example.com", user.Email)
		}).
		Return(nil)

	err := fx.service.HandleEvent(ctx, identityEvent(usecase.IdentityUserCreated, "user_1"))
	require.NoError(t, err)
}

func TestIdentityService_HandleEvent_Updated(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	err := fx.service.HandleEvent(ctx, identityEvent(usecase.IdentityUserUpdated, "user_1"))
	require.NoError(t, err)
}

func TestIdentityService_HandleEvent_DeletedCascades(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	txPostRepo := mockRepo.NewMockPostRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPostRepository().Return(txPostRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	txPostRepo.EXPECT().
		DeleteByOwner(ctx, "user_1").
		Return(int64(2), nil)

	txUserRepo.EXPECT().
		DeleteByExternalID(ctx, "user_1").
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := fx.service.HandleEvent(ctx, identityEvent(usecase.IdentityUserDeleted, "user_1"))
	require.NoError(t, err)
}

func TestIdentityService_HandleEvent_StorageFailureSwallowed(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.New("connection refused"))

	// The webhook must still be acknowledged.
	err := fx.service.HandleEvent(ctx, identityEvent(usecase.IdentityUserCreated, "user_1"))
	require.NoError(t, err)
}

func TestIdentityService_HandleEvent_UnknownKindIgnored(t *testing.T) {
	fx := createTestIdentityService(t)

	err := fx.service.HandleEvent(context.Background(), identityEvent("session.created", "user_1"))
	require.NoError(t, err)
}

func TestIdentityService_HandleEvent_MissingUserID(t *testing.T) {
	fx := createTestIdentityService(t)

	err := fx.service.HandleEvent(context.Background(), identityEvent(usecase.IdentityUserCreated, ""))
	require.Error(t, err)

	err = fx.service.HandleEvent(context.Background(), nil)
	require.Error(t, err)
}
