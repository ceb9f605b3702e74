// Package usecase defines the application-layer interfaces and their
// input/output types. Handlers depend on these interfaces, never on the
// implementations in impl.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
)

// CreatePostInput carries everything needed to create a product post.
type CreatePostInput struct {
	OwnerExternalID string
	ProductName     string
	Caption         string
	Price           float64
	Image           *service.ImageUpload
}

// EditPostInput carries the editable fields of a post. Image is optional;
// when nil the existing image is kept.
type EditPostInput struct {
	PostID      uuid.UUID
	ProductName string
	Caption     string
	Price       float64
	Discount    float64
	Image       *service.ImageUpload
}

// AuthorInfo is the live user record joined into a view, or its
// write-time snapshot when the user no longer exists.
type AuthorInfo struct {
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	UserName   string `json:"userName,omitempty"`
	Email      string `json:"email,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

// CommentView is a comment re-joined with its author's current profile.
type CommentView struct {
	ID        uuid.UUID  `json:"id"`
	Author    AuthorInfo `json:"author"`
	Text      string     `json:"text"`
	CreatedAt string     `json:"createdAt"`
}

// ReceiptView is a purchase receipt joined with the buyer's profile.
type ReceiptView struct {
	ID           uuid.UUID              `json:"id"`
	Buyer        AuthorInfo             `json:"buyer"`
	ProductName  string                 `json:"productName"`
	ProductImage string                 `json:"productImage"`
	Amount       float64                `json:"amount"`
	Shipping     entity.ShippingAddress `json:"shippingAddress"`
	CreatedAt    string                 `json:"createdAt"`
}

// PostView is the fully assembled read model of a post: the post columns
// plus author, comments and receipts joined against current user records.
type PostView struct {
	ID          uuid.UUID         `json:"id"`
	Author      AuthorInfo        `json:"author"`
	ProductName string            `json:"productName"`
	Caption     string            `json:"caption"`
	ImageURL    string            `json:"imageUrl"`
	Price       float64           `json:"price"`
	Discount    float64           `json:"discount"`
	Status      entity.PostStatus `json:"status"`
	Likes       int               `json:"likes"`
	LikedBy     []string          `json:"likedBy"`
	Comments    []CommentView     `json:"comments"`
	Receipts    []ReceiptView     `json:"purchasedBy"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

// PostUsecase defines the interface for product post use cases
type PostUsecase interface {
	// CreatePost uploads the image and persists a new pending post
	CreatePost(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	// EditPost updates a post's fields and resets its status to pending
	EditPost(ctx context.Context, input *EditPostInput) (*entity.Post, error)

	// DeletePost removes a post and all of its embedded records
	DeletePost(ctx context.Context, postID uuid.UUID) error

	// ToggleLike flips the calling user's like on a post
	ToggleLike(ctx context.Context, postID uuid.UUID, userExternalID string) (*entity.Post, error)

	// AddComment appends a comment with a snapshot of the author's profile
	AddComment(ctx context.Context, postID uuid.UUID, authorExternalID, text string) (*entity.Post, error)

	// ApplyDiscount reduces the price by percent and notifies other users
	ApplyDiscount(ctx context.Context, postID uuid.UUID, actorExternalID string, percent float64) (*entity.Post, error)

	// RemoveDiscount restores the pre-discount price and notifies other users
	RemoveDiscount(ctx context.Context, postID uuid.UUID, actorExternalID string) (*entity.Post, error)

	// UpdateStatus approves or rejects a batch of posts and emails the owners
	UpdateStatus(ctx context.Context, postIDs []uuid.UUID, status entity.PostStatus) error

	// ListPosts assembles the joined view of every post
	ListPosts(ctx context.Context) ([]*PostView, error)

	// ListUserPosts assembles the joined view of one owner's posts
	ListUserPosts(ctx context.Context, ownerExternalID string) ([]*PostView, error)
}
