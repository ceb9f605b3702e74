package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// UserUsecase defines the interface for user administration use cases
type UserUsecase interface {
	// ListUsers retrieves every synced user record
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// DeleteUser removes a user and all of their posts in one transaction
	DeleteUser(ctx context.Context, externalID string) error
}
