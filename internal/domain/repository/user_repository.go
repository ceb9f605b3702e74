// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Users are keyed by the identity provider's external id; the local uuid
// is an implementation detail of the storage.
type UserRepository interface {
	// FindByExternalID retrieves a single user by their identity-provider id.
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// FindByExternalIDs retrieves the users matching any of the given
	// identity-provider ids. Missing ids are simply absent from the result.
	FindByExternalIDs(ctx context.Context, externalIDs []string) ([]*entity.User, error)

	// ListAll retrieves every user record.
	ListAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Upsert creates the user or, when a record with the same external id
	// already exists, updates its profile fields in place.
	Upsert(ctx context.Context, user *entity.User) error

	// DeleteByExternalID removes the user with the given identity-provider id.
	DeleteByExternalID(ctx context.Context, externalID string) error
}
