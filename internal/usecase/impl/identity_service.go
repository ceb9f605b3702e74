package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type identityService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewIdentityService creates a new identity sync service instance
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:  params.UserRepo,
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleEvent applies one identity-provider event to the local user
// store. Storage failures are logged and swallowed: the provider retries
// on non-2xx responses and a permanently failing record would otherwise
// block its whole webhook queue.
func (s *identityService) HandleEvent(ctx context.Context, event *usecase.IdentityEvent) error {
	if event == nil || event.Profile.ExternalID == "" {
		return errors.New("identity event has no user id")
	}

	var err error
	switch event.Kind {
	case usecase.IdentityUserCreated:
		err = s.userRepo.Create(ctx, profileToUser(&event.Profile))
	case usecase.IdentityUserUpdated:
		err = s.userRepo.Upsert(ctx, profileToUser(&event.Profile))
	case usecase.IdentityUserDeleted:
		err = s.deleteUserCascade(ctx, event.Profile.ExternalID)
	default:
		s.log(ctx).Debug("Ignoring identity event",
			slog.String("kind", string(event.Kind)),
		)

		return nil
	}

	if err != nil {
		s.log(ctx).Error("Identity sync failed",
			slog.String("kind", string(event.Kind)),
			slog.String("external_id", event.Profile.ExternalID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// deleteUserCascade removes the user and their posts together, so a missing
// user record never strands orphaned posts.
func (s *identityService) deleteUserCascade(ctx context.Context, externalID string) error {
	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if _, err := txRepoFactory.NewPostRepository().DeleteByOwner(ctx, externalID); err != nil {
			return errors.Wrap(err, "failed to delete user's posts")
		}

		return txRepoFactory.NewUserRepository().DeleteByExternalID(ctx, externalID)
	})
}

func profileToUser(profile *usecase.IdentityProfile) *entity.User {
	return &entity.User{
		ExternalID: profile.ExternalID,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		UserName:   profile.UserName,
		Email:      profile.Email,
		AvatarURL:  profile.AvatarURL,
	}
}
