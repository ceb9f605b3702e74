package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific persistence errors. The usecase layer translates these
// into the public error taxonomy.
var (
	// ErrPostNotFound is returned when a post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrDuplicateReceipt is returned when a receipt with the same payment
	// event id has already been recorded.
	ErrDuplicateReceipt = errors.New("receipt already recorded for payment event")
)

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID, including its
	// likes, comments and receipts.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindByIDs retrieves the posts matching the given ids, without
	// loading child rows. Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Post, error)

	// ListAll retrieves every post with likes, comments and receipts,
	// newest first.
	ListAll(ctx context.Context) ([]*entity.Post, error)

	// ListByOwner retrieves one owner's posts with likes, comments and
	// receipts, newest first.
	ListByOwner(ctx context.Context, ownerExternalID string) ([]*entity.Post, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post's own columns (not child rows).
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post and, via cascade, its likes, comments and
	// receipts.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByOwner removes every post owned by the given external id,
	// cascading to child rows. Returns the number of posts removed.
	DeleteByOwner(ctx context.Context, ownerExternalID string) (int64, error)

	// ToggleLike flips the like state of userExternalID on the post in a
	// single transaction: the like row is inserted or deleted and the
	// counter adjusted together. Returns the post as it stands after the
	// toggle.
	ToggleLike(ctx context.Context, postID uuid.UUID, userExternalID string) (*entity.Post, error)

	// AddComment appends a comment row to the post.
	AddComment(ctx context.Context, comment *entity.Comment) error

	// UpdateStatusBatch sets the status of every listed post in one write.
	UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status entity.PostStatus) error

	// AddReceipt appends a purchase receipt. When a receipt with the same
	// payment event id already exists it returns ErrDuplicateReceipt and
	// writes nothing.
	AddReceipt(ctx context.Context, receipt *entity.PurchaseReceipt) error
}
