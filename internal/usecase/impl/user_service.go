package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListUsers retrieves every synced user record
func (s *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	if len(users) == 0 {
		return nil, domainerrors.ErrNoUsersFound
	}

	return users, nil
}

// DeleteUser removes a user and all of their posts. Both deletes run in
// one transaction so a failure leaves the user and their content intact.
func (s *userService) DeleteUser(ctx context.Context, externalID string) error {
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		postRepo := txRepoFactory.NewPostRepository()
		userRepo := txRepoFactory.NewUserRepository()

		removed, err := postRepo.DeleteByOwner(ctx, externalID)
		if err != nil {
			return errors.Wrap(err, "failed to delete user's posts")
		}

		if err := userRepo.DeleteByExternalID(ctx, externalID); err != nil {
			return err
		}

		s.log(ctx).Info("User deleted with owned posts",
			slog.String("external_id", externalID),
			slog.Int64("posts_removed", removed),
		)

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	return nil
}
