package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. OwnerExternalID references the
// identity provider's user id rather than users.id, so posts survive a
// resync of the local user table.
type PostModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerExternalID string    `gorm:"type:varchar(255);not null;index"`
	ProductName     string    `gorm:"type:varchar(255);not null"`
	Caption         string    `gorm:"type:text"`
	ImageURL        string    `gorm:"type:text"`
	Price           float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Discount        float64   `gorm:"type:numeric(5,2);not null;default:0"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Likes           int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	LikeRows []PostLikeModel        `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []PostCommentModel     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Receipts []PurchaseReceiptModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostLikeModel mirrors the 'post_likes' table. The (post_id, user) pair
// is unique so a user can hold at most one like per post.
type PostLikeModel struct {
	PostID         uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex:uq_post_likes_post_user"`
	UserExternalID string    `gorm:"type:varchar(255);primaryKey;uniqueIndex:uq_post_likes_post_user"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostLikeModel) TableName() string {
	return "post_likes"
}

// PostCommentModel mirrors the 'post_comments' table. AuthorName and
// AuthorAvatar are write-time snapshots.
type PostCommentModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PostID           uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorExternalID string    `gorm:"type:varchar(255);not null"`
	AuthorName       string    `gorm:"type:varchar(255)"`
	AuthorAvatar     string    `gorm:"type:text"`
	Text             string    `gorm:"type:text;not null"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostCommentModel) TableName() string {
	return "post_comments"
}

// PurchaseReceiptModel mirrors the 'purchase_receipts' table.
// PaymentEventID is unique so webhook replays cannot record twice.
type PurchaseReceiptModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PostID             uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerExternalID    string    `gorm:"type:varchar(255);not null"`
	ProductName        string    `gorm:"type:varchar(255)"`
	ProductImage       string    `gorm:"type:text"`
	Amount             float64   `gorm:"type:numeric(12,2);not null;default:0"`
	ShippingLine1      string    `gorm:"type:varchar(255)"`
	ShippingLine2      string    `gorm:"type:varchar(255)"`
	ShippingCity       string    `gorm:"type:varchar(100)"`
	ShippingState      string    `gorm:"type:varchar(100)"`
	ShippingPostalCode string    `gorm:"type:varchar(20)"`
	ShippingCountry    string    `gorm:"type:varchar(2)"`
	PaymentEventID     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseReceiptModel) TableName() string {
	return "purchase_receipts"
}
