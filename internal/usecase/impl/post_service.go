// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type postService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	imageStore service.ImageStore
	mailer     service.Mailer
	logger     *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo   repository.PostRepository
	UserRepo   repository.UserRepository
	ImageStore service.ImageStore
	Mailer     service.Mailer
	Logger     *slog.Logger
}

// NewPostService creates a new post service instance
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo:   params.PostRepo,
		userRepo:   params.UserRepo,
		imageStore: params.ImageStore,
		mailer:     params.Mailer,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreatePost uploads the image and persists a new pending post
func (s *postService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	if input.ProductName == "" || input.Caption == "" || input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productName, caption and price are required")
	}
	if input.Image == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("postImage is required")
	}

	if _, err := s.userRepo.FindByExternalID(ctx, input.OwnerExternalID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve post owner")
	}

	imageURL, err := s.imageStore.Upload(ctx, input.Image)
	if err != nil {
		return nil, domainerrors.ErrImageUploadFailed.WrapMessage(err.Error())
	}

	post := &entity.Post{
		OwnerExternalID: input.OwnerExternalID,
		ProductName:     input.ProductName,
		Caption:         input.Caption,
		ImageURL:        imageURL,
		Price:           input.Price,
		Status:          entity.PostStatusPending,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// EditPost updates a post's fields and resets its status to pending so it
// goes through moderation again.
func (s *postService) EditPost(ctx context.Context, input *usecase.EditPostInput) (*entity.Post, error) {
	if input.ProductName == "" || input.Caption == "" || input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productName, caption and price are required")
	}

	post, err := s.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	post.ProductName = input.ProductName
	post.Caption = input.Caption
	post.Price = input.Price
	post.Discount = input.Discount
	// Edited content has not been reviewed, regardless of its prior state.
	post.Status = entity.PostStatusPending

	if input.Image != nil {
		imageURL, err := s.imageStore.Upload(ctx, input.Image)
		if err != nil {
			return nil, domainerrors.ErrImageUploadFailed.WrapMessage(err.Error())
		}
		post.ImageURL = imageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, err
	}

	return post, nil
}

// DeletePost removes a post and all of its embedded records
func (s *postService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return err
	}

	return nil
}

// ToggleLike flips the calling user's like on a post
func (s *postService) ToggleLike(ctx context.Context, postID uuid.UUID, userExternalID string) (*entity.Post, error) {
	if _, err := s.userRepo.FindByExternalID(ctx, userExternalID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve liking user")
	}

	post, err := s.postRepo.ToggleLike(ctx, postID, userExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, err
	}

	return post, nil
}

// AddComment appends a comment with a snapshot of the author's profile
func (s *postService) AddComment(ctx context.Context, postID uuid.UUID, authorExternalID, text string) (*entity.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment text is required")
	}

	author, err := s.userRepo.FindByExternalID(ctx, authorExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve comment author")
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	comment := &entity.Comment{
		PostID:           postID,
		AuthorExternalID: authorExternalID,
		AuthorName:       displayName(author),
		AuthorAvatar:     author.AvatarURL,
		Text:             text,
	}

	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, err
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload post")
	}

	return post, nil
}

// ApplyDiscount reduces the price by percent and notifies every other user
func (s *postService) ApplyDiscount(ctx context.Context, postID uuid.UUID, actorExternalID string, percent float64) (*entity.Post, error) {
	if percent <= 0 || percent >= 100 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("discount must be between 0 and 100 percent, exclusive")
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	actor, err := s.userRepo.FindByExternalID(ctx, actorExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve acting user")
	}

	post.Price -= post.Price * percent / 100
	post.Discount = percent

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.broadcastToOthers(ctx, actor,
		buildDiscountAppliedMail(nil, displayName(actor), post.ProductName, percent))

	return post, nil
}

// RemoveDiscount restores the pre-discount price and notifies every other user
func (s *postService) RemoveDiscount(ctx context.Context, postID uuid.UUID, actorExternalID string) (*entity.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	if post.Discount == 0 {
		return nil, domainerrors.ErrNoDiscount
	}

	actor, err := s.userRepo.FindByExternalID(ctx, actorExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve acting user")
	}

	// Invert the discounted price back to the original.
	post.Price = post.Price / (1 - post.Discount/100)
	post.Discount = 0

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.broadcastToOthers(ctx, actor,
		buildDiscountRemovedMail(nil, displayName(actor), post.ProductName))

	return post, nil
}

// UpdateStatus approves or rejects a batch of posts. The existence check
// runs before any write so a partially unknown batch changes nothing.
func (s *postService) UpdateStatus(ctx context.Context, postIDs []uuid.UUID, status entity.PostStatus) error {
	if len(postIDs) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("postIds must be a non-empty array")
	}
	if status != entity.PostStatusApproved && status != entity.PostStatusRejected {
		return domainerrors.ErrInvalidStatus
	}

	posts, err := s.postRepo.FindByIDs(ctx, postIDs)
	if err != nil {
		return errors.Wrap(err, "failed to find posts")
	}
	if len(posts) != len(postIDs) {
		return domainerrors.ErrPostNotFound.WithDetails("one or more posts not found")
	}

	if err := s.postRepo.UpdateStatusBatch(ctx, postIDs, status); err != nil {
		return err
	}

	recipients := s.ownerEmails(ctx, posts)
	if len(recipients) > 0 {
		if err := s.mailer.Send(ctx, buildStatusMail(recipients, status)); err != nil {
			s.log(ctx).Warn("Failed to send status notification mail",
				slog.String("status", string(status)),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

// ListPosts assembles the joined view of every post
func (s *postService) ListPosts(ctx context.Context) ([]*usecase.PostView, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}
	if len(posts) == 0 {
		return nil, domainerrors.ErrNoPostsFound
	}

	return s.assembleViews(ctx, posts)
}

// ListUserPosts assembles the joined view of one owner's posts
func (s *postService) ListUserPosts(ctx context.Context, ownerExternalID string) ([]*usecase.PostView, error) {
	posts, err := s.postRepo.ListByOwner(ctx, ownerExternalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by owner")
	}
	if len(posts) == 0 {
		return nil, domainerrors.ErrNoPostsFound
	}

	return s.assembleViews(ctx, posts)
}

// assembleViews resolves every user referenced by the posts in one query
// and joins them into the read model. Comment authors are re-joined
// against the live records; the write-time snapshot only serves when the
// author record no longer exists.
func (s *postService) assembleViews(ctx context.Context, posts []*entity.Post) ([]*usecase.PostView, error) {
	idSet := make(map[string]struct{})
	for _, post := range posts {
		idSet[post.OwnerExternalID] = struct{}{}
		for _, comment := range post.Comments {
			idSet[comment.AuthorExternalID] = struct{}{}
		}
		for _, receipt := range post.Receipts {
			idSet[receipt.BuyerExternalID] = struct{}{}
		}
	}

	externalIDs := make([]string, 0, len(idSet))
	for id := range idSet {
		externalIDs = append(externalIDs, id)
	}

	users, err := s.userRepo.FindByExternalIDs(ctx, externalIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve referenced users")
	}

	usersByID := make(map[string]*entity.User, len(users))
	for _, user := range users {
		usersByID[user.ExternalID] = user
	}

	views := make([]*usecase.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, buildPostView(post, usersByID))
	}

	return views, nil
}

func buildPostView(post *entity.Post, usersByID map[string]*entity.User) *usecase.PostView {
	view := &usecase.PostView{
		ID:          post.ID,
		Author:      authorInfo(post.OwnerExternalID, usersByID),
		ProductName: post.ProductName,
		Caption:     post.Caption,
		ImageURL:    post.ImageURL,
		Price:       post.Price,
		Discount:    post.Discount,
		Status:      post.Status,
		Likes:       post.Likes,
		LikedBy:     post.LikedBy,
		Comments:    make([]usecase.CommentView, 0, len(post.Comments)),
		Receipts:    make([]usecase.ReceiptView, 0, len(post.Receipts)),
		CreatedAt:   post.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   post.UpdatedAt.Format(time.RFC3339),
	}

	for _, comment := range post.Comments {
		author := authorInfo(comment.AuthorExternalID, usersByID)
		if _, ok := usersByID[comment.AuthorExternalID]; !ok {
			// Author record gone: fall back to the write-time snapshot.
			author.Name = comment.AuthorName
			author.AvatarURL = comment.AuthorAvatar
		}

		view.Comments = append(view.Comments, usecase.CommentView{
			ID:        comment.ID,
			Author:    author,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		})
	}

	for _, receipt := range post.Receipts {
		view.Receipts = append(view.Receipts, usecase.ReceiptView{
			ID:           receipt.ID,
			Buyer:        authorInfo(receipt.BuyerExternalID, usersByID),
			ProductName:  receipt.ProductName,
			ProductImage: receipt.ProductImage,
			Amount:       receipt.Amount,
			Shipping:     receipt.Shipping,
			CreatedAt:    receipt.CreatedAt.Format(time.RFC3339),
		})
	}

	return view
}

func authorInfo(externalID string, usersByID map[string]*entity.User) usecase.AuthorInfo {
	user, ok := usersByID[externalID]
	if !ok {
		return usecase.AuthorInfo{ExternalID: externalID}
	}

	return usecase.AuthorInfo{
		ExternalID: externalID,
		Name:       user.FullName(),
		UserName:   user.UserName,
		Email:      user.Email,
		AvatarURL:  user.AvatarURL,
	}
}

// broadcastToOthers sends msg to every user except the actor. Failures
// are logged and never surfaced to the caller.
func (s *postService) broadcastToOthers(ctx context.Context, actor *entity.User, msg *service.MailMessage) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		s.log(ctx).Warn("Failed to list users for broadcast mail",
			slog.String("error", err.Error()),
		)

		return
	}

	recipients := make([]string, 0, len(users))
	for _, user := range users {
		if user.Email == "" || user.Email == actor.Email {
			continue
		}
		recipients = append(recipients, user.Email)
	}
	if len(recipients) == 0 {
		return
	}

	msg.To = recipients
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log(ctx).Warn("Failed to send broadcast mail",
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()),
		)
	}
}

// ownerEmails resolves the distinct owner email addresses of the posts.
func (s *postService) ownerEmails(ctx context.Context, posts []*entity.Post) []string {
	ownerSet := make(map[string]struct{})
	for _, post := range posts {
		ownerSet[post.OwnerExternalID] = struct{}{}
	}

	ownerIDs := make([]string, 0, len(ownerSet))
	for id := range ownerSet {
		ownerIDs = append(ownerIDs, id)
	}

	owners, err := s.userRepo.FindByExternalIDs(ctx, ownerIDs)
	if err != nil {
		s.log(ctx).Warn("Failed to resolve post owners for status mail",
			slog.String("error", err.Error()),
		)

		return nil
	}

	emailSet := make(map[string]struct{})
	emails := make([]string, 0, len(owners))
	for _, owner := range owners {
		if owner.Email == "" {
			continue
		}
		if _, seen := emailSet[owner.Email]; seen {
			continue
		}
		emailSet[owner.Email] = struct{}{}
		emails = append(emails, owner.Email)
	}

	return emails
}

// displayName prefers the handle users see in the app over the legal name.
func displayName(user *entity.User) string {
	if user.UserName != "" {
		return user.UserName
	}

	return user.FullName()
}
