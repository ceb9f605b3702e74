package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service    usecase.PostUsecase
	postRepo   *mockRepo.MockPostRepository
	userRepo   *mockRepo.MockUserRepository
	imageStore *mockService.MockImageStore
	mailer     *mockService.MockMailer
}

func createTestPostService(t *testing.T) postServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	imageStore := mockService.NewMockImageStore(t)
	mailer := mockService.NewMockMailer(t)

	service := NewPostService(PostServiceParams{
		PostRepo:   postRepo,
		UserRepo:   userRepo,
		ImageStore: imageStore,
		Mailer:     mailer,
		Logger:     newTestLogger(),
	})

	return postServiceFixtures{
		service:    service,
		postRepo:   postRepo,
		userRepo:   userRepo,
		imageStore: imageStore,
		mailer:     mailer,
	}
}

func testUser(externalID, userName, email string) *entity.User {
	return &entity.User{
		ID:         uuid.New(),
		ExternalID: externalID,
		FirstName:  "Test",
		LastName:   "User",
		UserName:   userName,
		Email:      email,
	}
}

func testUpload() *service.ImageUpload {
	return &service.ImageUpload{
		FileName:    "product.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	}
}

func TestPostService_CreatePost(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	owner := testUser("user_1", "seller", "seller@example.com")

	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_1").
		Return(owner, nil)

	fx.imageStore.EXPECT().
		Upload(ctx, mock.AnythingOfType("*service.ImageUpload")).
		Return("https://cdn.example.com/product.png", nil)

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, &usecase.CreatePostInput{
		OwnerExternalID: "user_1",
		ProductName:     "Handmade mug",
		Caption:         "A mug",
		Price:           25,
		Image:           testUpload(),
	})
	require.NoError(t, err)
	assert.Equal(t, "user_1", post.OwnerExternalID)
	assert.Equal(t, "https://cdn.example.com/product.png", post.ImageURL)
	assert.Equal(t, entity.PostStatusPending, post.Status)
}

func TestPostService_CreatePost_MissingFields(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.CreatePost(context.Background(), &usecase.CreatePostInput{
		OwnerExternalID: "user_1",
		Caption:         "A mug",
		Price:           25,
		Image:           testUpload(),
	})
	requireAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestPostService_CreatePost_MissingImage(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.CreatePost(context.Background(), &usecase.CreatePostInput{
		OwnerExternalID: "user_1",
		ProductName:     "Handmade mug",
		Caption:         "A mug",
		Price:           25,
	})
	requireAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestPostService_CreatePost_OwnerNotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreatePost(ctx, &usecase.CreatePostInput{
		OwnerExternalID: "ghost",
		ProductName:     "Handmade mug",
		Caption:         "A mug",
		Price:           25,
		Image:           testUpload(),
	})
	requireAppErrorCode(t, err, "USER_NOT_FOUND")
}

func TestPostService_CreatePost_UploadFailure(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_1").
		Return(testUser("user_1", "seller", "seller@example.com"), nil)

	fx.imageStore.EXPECT().
		Upload(ctx, mock.AnythingOfType("*service.ImageUpload")).
		Return("", errors.New("bucket unavailable"))

	_, err := fx.service.CreatePost(ctx, &usecase.CreatePostInput{
		OwnerExternalID: "user_1",
		ProductName:     "Handmade mug",
		Caption:         "A mug",
		Price:           25,
		Image:           testUpload(),
	})
	requireAppErrorCode(t, err, "IMAGE_UPLOAD_FAILED")
}

func TestPostService_EditPost_ResetsStatusToPending(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	existing := &entity.Post{
		ID:              postID,
		OwnerExternalID: "user_1",
		ProductName:     "Handmade mug",
		Caption:         "A mug",
		Price:           25,
		Status:          entity.PostStatusApproved,
	}

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(existing, nil)

	fx.postRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			assert.Equal(t, entity.PostStatusPending, post.Status)
			assert.Equal(t, "Bigger mug", post.ProductName)
		}).
		Return(nil)

	post, err := fx.service.EditPost(ctx, &usecase.EditPostInput{
		PostID:      postID,
		ProductName: "Bigger mug",
		Caption:     "Still a mug",
		Price:       30,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusPending, post.Status)
	assert.Equal(t, 30.0, post.Price)
}

func TestPostService_EditPost_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.EditPost(ctx, &usecase.EditPostInput{
		PostID:      postID,
		ProductName: "Bigger mug",
		Caption:     "Still a mug",
		Price:       30,
	})
	requireAppErrorCode(t, err, "POST_NOT_FOUND")
}

func TestPostService_DeletePost_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	fx.postRepo.EXPECT().
		Delete(ctx, postID).
		Return(repository.ErrPostNotFound)

	err := fx.service.DeletePost(ctx, postID)
	requireAppErrorCode(t, err, "POST_NOT_FOUND")
}

func TestPostService_ToggleLike(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	liked := &entity.Post{ID: postID, Likes: 1, LikedBy: []string{"user_2"}}

	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_2").
		Return(testUser("user_2", "buyer", "buyer@example.com"), nil)

	fx.postRepo.EXPECT().
		ToggleLike(ctx, postID, "user_2").
		Return(liked, nil)

	post, err := fx.service.ToggleLike(ctx, postID, "user_2")
	require.NoError(t, err)
	assert.Equal(t, 1, post.Likes)
	assert.Contains(t, post.LikedBy, "user_2")
}

func TestPostService_ToggleLike_PostNotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_2").
		Return(testUser("user_2", "buyer", "buyer@example.com"), nil)

	fx.postRepo.EXPECT().
		ToggleLike(ctx, postID, "user_2").
		Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.ToggleLike(ctx, postID, "user_2")
	requireAppErrorCode(t, err, "POST_NOT_FOUND")
}

func TestPostService_AddComment(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	author := testUser("user_2", "buyer", "buyer@example.com")
	post := &entity.Post{ID: postID, OwnerExternalID: "user_1"}

	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_2").
		Return(author, nil)

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(post, nil)

	fx.postRepo.EXPECT().
		AddComment(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			assert.Equal(t, "buyer", comment.AuthorName)
			assert.Equal(t, "nice mug", comment.Text)
		}).
		Return(nil)

	_, err := fx.service.AddComment(ctx, postID, "user_2", "  nice mug  ")
	require.NoError(t, err)
}

func TestPostService_AddComment_BlankText(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.AddComment(context.Background(), uuid.New(), "user_2", "   ")
	requireAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestPostService_ApplyDiscount(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	actor := testUser("user_1", "seller", "seller@example.com")
	post := &entity.Post{ID: postID, OwnerExternalID: "user_1", ProductName: "Handmade mug", Price: 200}

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(post, nil)

	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_1").
		Return(actor, nil)

	fx.postRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Post")).
		Return(nil)

	fx.userRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.User{
			actor,
			testUser("user_2", "buyer", "buyer@example.com"),
		}, nil)

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.MailMessage")).
		Run(func(ctx context.Context, msg *service.MailMessage) {
			assert.Equal(t, []string{"buyer@example.com"}, msg.To)
		}).
		Return(nil)

	updated, err := fx.service.ApplyDiscount(ctx, postID, "user_1", 25)
	require.NoError(t, err)
	assert.InDelta(t, 150, updated.Price, 0.01)
	assert.Equal(t, 25.0, updated.Discount)
}

func TestPostService_ApplyDiscount_InvalidPercent(t *testing.T) {
	fx := createTestPostService(t)

	for _, percent := range []float64{0, -5, 100, 150} {
		_, err := fx.service.ApplyDiscount(context.Background(), uuid.New(), "user_1", percent)
		requireAppErrorCode(t, err, "VALIDATION_FAILED")
	}
}

func TestPostService_ApplyDiscount_MailFailureTolerated(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	actor := testUser("user_1", "seller", "seller@example.com")

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID, OwnerExternalID: "user_1", Price: 100}, nil)

	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_1").
		Return(actor, nil)

	fx.postRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Post")).
		Return(nil)

	fx.userRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.User{testUser("user_2", "buyer", "buyer@example.com")}, nil)

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.MailMessage")).
		Return(errors.New("smtp down"))

	_, err := fx.service.ApplyDiscount(ctx, postID, "user_1", 10)
	require.NoError(t, err)
}

func TestPostService_RemoveDiscount_RestoresPrice(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()
	actor := testUser("user_1", "seller", "seller@example.com")
	post := &entity.Post{ID: postID, OwnerExternalID: "user_1", ProductName: "Handmade mug", Price: 150, Discount: 25}

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(post, nil)

	fx.userRepo.EXPECT().
		FindByExternalID(ctx, "user_1").
		Return(actor, nil)

	fx.postRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Post")).
		Return(nil)

	fx.userRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.User{actor}, nil)

	updated, err := fx.service.RemoveDiscount(ctx, postID, "user_1")
	require.NoError(t, err)
	assert.InDelta(t, 200, updated.Price, 0.01)
	assert.Equal(t, 0.0, updated.Discount)
}

func TestPostService_RemoveDiscount_NoDiscount(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID, Price: 100}, nil)

	_, err := fx.service.RemoveDiscount(ctx, postID, "user_1")
	requireAppErrorCode(t, err, "NO_DISCOUNT")
}

func TestPostService_UpdateStatus(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	posts := []*entity.Post{
		{ID: ids[0], OwnerExternalID: "user_1"},
		{ID: ids[1], OwnerExternalID: "user_2"},
	}

	fx.postRepo.EXPECT().
		FindByIDs(ctx, ids).
		Return(posts, nil)

	fx.postRepo.EXPECT().
		UpdateStatusBatch(ctx, ids, entity.PostStatusApproved).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByExternalIDs(ctx, mock.AnythingOfType("[]string")).
		Return([]*entity.User{
			testUser("user_1", "seller", "seller@example.com"),
			testUser("user_2", "buyer", "buyer@example.com"),
		}, nil)

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.MailMessage")).
		Run(func(ctx context.Context, msg *service.MailMessage) {
			assert.Equal(t, "Your Post Has Been Approved", msg.Subject)
			assert.ElementsMatch(t, []string{"seller@example.com", "buyer@example.com"}, msg.To)
		}).
		Return(nil)

	err := fx.service.UpdateStatus(ctx, ids, entity.PostStatusApproved)
	require.NoError(t, err)
}

func TestPostService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestPostService(t)

	err := fx.service.UpdateStatus(context.Background(), []uuid.UUID{uuid.New()}, entity.PostStatusPending)
	requireAppErrorCode(t, err, "INVALID_STATUS")
}

func TestPostService_UpdateStatus_EmptyBatch(t *testing.T) {
	fx := createTestPostService(t)

	err := fx.service.UpdateStatus(context.Background(), nil, entity.PostStatusApproved)
	requireAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestPostService_UpdateStatus_PartialBatchWritesNothing(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	// Only one of the two ids exists; no status write may happen.
	fx.postRepo.EXPECT().
		FindByIDs(ctx, ids).
		Return([]*entity.Post{{ID: ids[0], OwnerExternalID: "user_1"}}, nil)

	err := fx.service.UpdateStatus(ctx, ids, entity.PostStatusRejected)
	requireAppErrorCode(t, err, "POST_NOT_FOUND")
}

func TestPostService_ListPosts_Empty(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.EXPECT().
		ListAll(ctx).
		Return(nil, nil)

	_, err := fx.service.ListPosts(ctx)
	requireAppErrorCode(t, err, "NO_POSTS_FOUND")
}

func TestPostService_ListPosts_JoinsLiveAuthors(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	now := time.Now()
	post := &entity.Post{
		ID:              uuid.New(),
		OwnerExternalID: "user_1",
		ProductName:     "Handmade mug",
		Price:           25,
		Status:          entity.PostStatusApproved,
		Comments: []entity.Comment{
			{
				ID:               uuid.New(),
				AuthorExternalID: "user_2",
				AuthorName:       "old-name",
				Text:             "nice mug",
				CreatedAt:        now,
			},
			{
				ID:               uuid.New(),
				AuthorExternalID: "user_gone",
				AuthorName:       "departed",
				AuthorAvatar:     "https://cdn.example.com/old.png",
				Text:             "still here",
				CreatedAt:        now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	fx.postRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.Post{post}, nil)

	owner := testUser("user_1", "seller", "seller@example.com")
	commenter := testUser("user_2", "buyer", "buyer@example.com")
	commenter.FirstName = "Fresh"
	commenter.LastName = "Name"

	fx.userRepo.EXPECT().
		FindByExternalIDs(ctx, mock.AnythingOfType("[]string")).
		Return([]*entity.User{owner, commenter}, nil)

	views, err := fx.service.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "seller", view.Author.UserName)
	require.Len(t, view.Comments, 2)

	// Live record wins over the write-time snapshot.
	assert.Equal(t, "Fresh Name", view.Comments[0].Author.Name)
	// Author gone: snapshot serves.
	assert.Equal(t, "departed", view.Comments[1].Author.Name)
	assert.Equal(t, "https://cdn.example.com/old.png", view.Comments[1].Author.AvatarURL)
}

func TestPostService_ListUserPosts_Empty(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.EXPECT().
		ListByOwner(ctx, "user_1").
		Return([]*entity.Post{}, nil)

	_, err := fx.service.ListUserPosts(ctx, "user_1")
	requireAppErrorCode(t, err, "NO_POSTS_FOUND")
}
