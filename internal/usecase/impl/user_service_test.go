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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	userRepo  *mockRepo.MockUserRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewUserService(UserServiceParams{
		UserRepo:  userRepo,
		TxManager: txManager,
		Logger:    newTestLogger(),
	})

	return userServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.User{
			testUser("user_1", "seller", "seller@example.com"),
			testUser("user_2", "buyer", "buyer@example.com"),
		}, nil)

	users, err := fx.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		ListAll(ctx).
		Return(nil, nil)

	_, err := fx.service.ListUsers(ctx)
	requireAppErrorCode(t, err, "NO_USERS_FOUND")
}

func TestUserService_DeleteUser_CascadesPostsFirst(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	txPostRepo := mockRepo.NewMockPostRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPostRepository().Return(txPostRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	var order []string
	txPostRepo.EXPECT().
		DeleteByOwner(ctx, "user_1").
		Run(func(ctx context.Context, ownerExternalID string) {
			order = append(order, "posts")
		}).
		Return(int64(3), nil)

	txUserRepo.EXPECT().
		DeleteByExternalID(ctx, "user_1").
		Run(func(ctx context.Context, externalID string) {
			order = append(order, "user")
		}).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := fx.service.DeleteUser(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"posts", "user"}, order)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	txPostRepo := mockRepo.NewMockPostRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPostRepository().Return(txPostRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	txPostRepo.EXPECT().
		DeleteByOwner(ctx, "ghost").
		Return(int64(0), nil)

	txUserRepo.EXPECT().
		DeleteByExternalID(ctx, "ghost").
		Return(repository.ErrUserNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := fx.service.DeleteUser(ctx, "ghost")
	requireAppErrorCode(t, err, "USER_NOT_FOUND")
}

func TestUserService_DeleteUser_TransactionFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	err := fx.service.DeleteUser(ctx, "user_1")
	requireAppErrorCode(t, err, "TRANSACTION_FAILED")
}
