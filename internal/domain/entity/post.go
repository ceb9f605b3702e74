package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus is the moderation state of a product post.
type PostStatus string

const (
	PostStatusPending  PostStatus = "pending"
	PostStatusApproved PostStatus = "approved"
	PostStatusRejected PostStatus = "rejected"
)

// Valid reports whether s is one of the known moderation states.
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusPending, PostStatusApproved, PostStatusRejected:
		return true
	}
	return false
}

// Post is a product listing created by a user. OwnerExternalID references
// the owner's identity-provider id, not the local users.id.
type Post struct {
	ID              uuid.UUID         `json:"id"`
	OwnerExternalID string            `json:"ownerExternalId"`
	ProductName     string            `json:"productName"`
	Caption         string            `json:"caption"`
	ImageURL        string            `json:"imageUrl"`
	Price           float64           `json:"price"`
	Discount        float64           `json:"discount"`
	Status          PostStatus        `json:"status"`
	Likes           int               `json:"likes"`
	LikedBy         []string          `json:"likedBy"`
	Comments        []Comment         `json:"comments"`
	Receipts        []PurchaseReceipt `json:"receipts"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// Comment is a user comment on a post. AuthorName and AuthorAvatar are
// snapshots taken at write time; views re-join against the live user
// record and fall back to the snapshot when the author is gone.
type Comment struct {
	ID               uuid.UUID `json:"id"`
	PostID           uuid.UUID `json:"postId"`
	AuthorExternalID string    `json:"authorExternalId"`
	AuthorName       string    `json:"authorName"`
	AuthorAvatar     string    `json:"authorAvatar"`
	Text             string    `json:"text"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ShippingAddress is the destination captured by the payment provider
// at checkout.
type ShippingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PurchaseReceipt records one completed purchase of a post.
// PaymentEventID is the provider event id; it is unique so that webhook
// replays never record the same order twice.
type PurchaseReceipt struct {
	ID              uuid.UUID       `json:"id"`
	PostID          uuid.UUID       `json:"postId"`
	BuyerExternalID string          `json:"buyerExternalId"`
	ProductName     string          `json:"productName"`
	ProductImage    string          `json:"productImage"`
	Amount          float64         `json:"amount"`
	Shipping        ShippingAddress `json:"shipping"`
	PaymentEventID  string          `json:"paymentEventId"`
	CreatedAt       time.Time       `json:"createdAt"`
}
