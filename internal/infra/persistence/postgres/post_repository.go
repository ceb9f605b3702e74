package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// withChildren preloads the like, comment and receipt rows of a post query.
// Comments keep insertion order so the conversation reads top to bottom.
func (repo *postRepository) withChildren(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("LikeRows").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_comments.created_at ASC")
		}).
		Preload("Receipts", func(db *gorm.DB) *gorm.DB {
			return db.Order("purchase_receipts.created_at ASC")
		})
}

// FindByID retrieves a single post with its likes, comments and receipts.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.withChildren(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByIDs retrieves the posts matching the given ids without child rows.
func (repo *postRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by ids")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// ListAll retrieves every post with child rows, newest first.
func (repo *postRepository) ListAll(ctx context.Context) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.withChildren(ctx).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// ListByOwner retrieves one owner's posts with child rows, newest first.
func (repo *postRepository) ListByOwner(ctx context.Context, ownerExternalID string) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.withChildren(ctx).
		Where("owner_external_id = ?", ownerExternalID).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts by owner")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update modifies a post's own columns. Child rows are managed through
// their dedicated operations.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	updates := map[string]any{
		"product_name": post.ProductName,
		"caption":      post.Caption,
		"image_url":    post.ImageURL,
		"price":        post.Price,
		"discount":     post.Discount,
		"status":       string(post.Status),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(updates)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post; likes, comments and receipts go with it via FK cascade.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// DeleteByOwner removes every post owned by the given external id.
func (repo *postRepository) DeleteByOwner(ctx context.Context, ownerExternalID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("owner_external_id = ?", ownerExternalID).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete posts by owner")
	}

	return result.RowsAffected, nil
}

// ToggleLike flips the like state of a user on a post. The like row and
// the counter move together inside one transaction, so concurrent toggles
// by distinct users cannot lose updates: the unique (post_id, user) index
// serializes same-user races and the relative counter update serializes
// cross-user ones.
func (repo *postRepository) ToggleLike(ctx context.Context, postID uuid.UUID, userExternalID string) (*entity.Post, error) {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed := tx.
			Where("post_id = ? AND user_external_id = ?", postID, userExternalID).
			Delete(&model.PostLikeModel{})
		if removed.Error != nil {
			return domainerrors.NewDatabaseExecuteError(removed.Error, "failed to remove like")
		}

		if removed.RowsAffected > 0 {
			// The like existed: this toggle is an unlike.
			if err := tx.Model(&model.PostModel{}).
				Where("id = ?", postID).
				UpdateColumn("likes", gorm.Expr("likes - 1")).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to decrement likes")
			}

			return nil
		}

		likeM := &model.PostLikeModel{
			PostID:         postID,
			UserExternalID: userExternalID,
		}
		if err := tx.Create(likeM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				// A concurrent toggle by the same user won the insert.
				return domainerrors.ErrConflict.WrapMessage("like already recorded")
			}
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrPostNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to record like")
		}

		incremented := tx.Model(&model.PostModel{}).
			Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes + 1"))
		if incremented.Error != nil {
			return domainerrors.NewDatabaseExecuteError(incremented.Error, "failed to increment likes")
		}
		if incremented.RowsAffected == 0 {
			return repository.ErrPostNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, postID)
}

// AddComment appends a comment row to the post.
func (repo *postRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required comment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// UpdateStatusBatch sets the status of every listed post in one write.
func (repo *postRepository) UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status entity.PostStatus) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id IN ?", ids).
		UpdateColumn("status", string(status)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post statuses")
	}

	return nil
}

// AddReceipt appends a purchase receipt. The unique payment_event_id
// column turns a webhook replay into ErrDuplicateReceipt instead of a
// second receipt.
func (repo *postRepository) AddReceipt(ctx context.Context, receipt *entity.PurchaseReceipt) error {
	receiptM := fromReceiptDomain(receipt)

	if err := repo.db.WithContext(ctx).Create(receiptM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReceipt
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add receipt")
	}

	receipt.ID = receiptM.ID
	receipt.CreatedAt = receiptM.CreatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	likedBy := make([]string, 0, len(data.LikeRows))
	for _, like := range data.LikeRows {
		likedBy = append(likedBy, like.UserExternalID)
	}

	comments := make([]entity.Comment, 0, len(data.Comments))
	for i := range data.Comments {
		comments = append(comments, *toCommentDomain(&data.Comments[i]))
	}

	receipts := make([]entity.PurchaseReceipt, 0, len(data.Receipts))
	for i := range data.Receipts {
		receipts = append(receipts, *toReceiptDomain(&data.Receipts[i]))
	}

	return &entity.Post{
		ID:              data.ID,
		OwnerExternalID: data.OwnerExternalID,
		ProductName:     data.ProductName,
		Caption:         data.Caption,
		ImageURL:        data.ImageURL,
		Price:           data.Price,
		Discount:        data.Discount,
		Status:          entity.PostStatus(data.Status),
		Likes:           data.Likes,
		LikedBy:         likedBy,
		Comments:        comments,
		Receipts:        receipts,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
// Child rows are not mapped; they are written through their own operations.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:              data.ID,
		OwnerExternalID: data.OwnerExternalID,
		ProductName:     data.ProductName,
		Caption:         data.Caption,
		ImageURL:        data.ImageURL,
		Price:           data.Price,
		Discount:        data.Discount,
		Status:          string(data.Status),
		Likes:           data.Likes,
	}
}

// toCommentDomain converts a GORM PostCommentModel to a domain Comment entity.
func toCommentDomain(data *model.PostCommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:               data.ID,
		PostID:           data.PostID,
		AuthorExternalID: data.AuthorExternalID,
		AuthorName:       data.AuthorName,
		AuthorAvatar:     data.AuthorAvatar,
		Text:             data.Text,
		CreatedAt:        data.CreatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM PostCommentModel.
func fromCommentDomain(data *entity.Comment) *model.PostCommentModel {
	if data == nil {
		return nil
	}

	return &model.PostCommentModel{
		ID:               data.ID,
		PostID:           data.PostID,
		AuthorExternalID: data.AuthorExternalID,
		AuthorName:       data.AuthorName,
		AuthorAvatar:     data.AuthorAvatar,
		Text:             data.Text,
	}
}

// toReceiptDomain converts a GORM PurchaseReceiptModel to a domain PurchaseReceipt entity.
func toReceiptDomain(data *model.PurchaseReceiptModel) *entity.PurchaseReceipt {
	if data == nil {
		return nil
	}

	return &entity.PurchaseReceipt{
		ID:              data.ID,
		PostID:          data.PostID,
		BuyerExternalID: data.BuyerExternalID,
		ProductName:     data.ProductName,
		ProductImage:    data.ProductImage,
		Amount:          data.Amount,
		Shipping: entity.ShippingAddress{
			Line1:      data.ShippingLine1,
			Line2:      data.ShippingLine2,
			City:       data.ShippingCity,
			State:      data.ShippingState,
			PostalCode: data.ShippingPostalCode,
			Country:    data.ShippingCountry,
		},
		PaymentEventID: data.PaymentEventID,
		CreatedAt:      data.CreatedAt,
	}
}

// fromReceiptDomain converts a domain PurchaseReceipt entity to a GORM PurchaseReceiptModel.
func fromReceiptDomain(data *entity.PurchaseReceipt) *model.PurchaseReceiptModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseReceiptModel{
		ID:                 data.ID,
		PostID:             data.PostID,
		BuyerExternalID:    data.BuyerExternalID,
		ProductName:        data.ProductName,
		ProductImage:       data.ProductImage,
		Amount:             data.Amount,
		ShippingLine1:      data.Shipping.Line1,
		ShippingLine2:      data.Shipping.Line2,
		ShippingCity:       data.Shipping.City,
		ShippingState:      data.Shipping.State,
		ShippingPostalCode: data.Shipping.PostalCode,
		ShippingCountry:    data.Shipping.Country,
		PaymentEventID:     data.PaymentEventID,
	}
}
