package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler holds dependencies for product-post handlers
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// DeletePostRequest represents the request body for deleting a post
type DeletePostRequest struct {
	PostID string `json:"postid" validate:"required,uuid"`
}

// ToggleLikeRequest represents the request body for liking a post
type ToggleLikeRequest struct {
	PostID string `json:"postid" validate:"required,uuid"`
	UserID string `json:"userId" validate:"required"`
}

// AddCommentRequest represents the request body for commenting on a post
type AddCommentRequest struct {
	PostID  string `json:"postid" validate:"required,uuid"`
	UserID  string `json:"userId" validate:"required"`
	Comment string `json:"commenttxt" validate:"required"`
}

// AddDiscountRequest represents the request body for applying a discount
type AddDiscountRequest struct {
	PostID   string  `json:"postId" validate:"required,uuid"`
	UserID   string  `json:"userId" validate:"required"`
	Discount float64 `json:"discount" validate:"required"`
}

// RemoveDiscountRequest represents the request body for removing a discount
type RemoveDiscountRequest struct {
	PostID string `json:"postId" validate:"required,uuid"`
	UserID string `json:"userId" validate:"required"`
}

// UpdateStatusRequest represents the request body for bulk status moderation
type UpdateStatusRequest struct {
	PostIDs []string `json:"postIds" validate:"required,min=1,dive,uuid"`
	Status  string   `json:"status" validate:"required"`
}

// ListUserPostsRequest represents the request body for listing one user's posts
type ListUserPostsRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// CreatePost handles the multipart form that creates a new product post.
// The image is required and travels in the "postImage" part.
func (h *PostHandler) CreatePost(c echo.Context) error {
	ownerID := c.FormValue("userId")
	productName := c.FormValue("productName")
	caption := c.FormValue("caption")
	rawPrice := c.FormValue("price")
	if ownerID == "" || productName == "" || caption == "" || rawPrice == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "userId, productName, caption and price are required")
	}

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "price must be a number")
	}

	image, err := h.formImage(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "postImage file is required")
	}
	defer image.close()

	input := &usecase.CreatePostInput{
		OwnerExternalID: ownerID,
		ProductName:     productName,
		Caption:         caption,
		Price:           price,
		Image:           image.upload,
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post, "Post has been created")
}

// EditPost handles the multipart form that updates a post. The image part
// is optional; when absent the existing image is kept.
func (h *PostHandler) EditPost(c echo.Context) error {
	postID, err := uuid.Parse(c.FormValue("postid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "price must be a number")
	}

	discount := 0.0
	if rawDiscount := c.FormValue("discount"); rawDiscount != "" {
		discount, err = strconv.ParseFloat(rawDiscount, 64)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "discount must be a number")
		}
	}

	input := &usecase.EditPostInput{
		PostID:      postID,
		ProductName: c.FormValue("productName"),
		Caption:     c.FormValue("caption"),
		Price:       price,
		Discount:    discount,
	}

	if image, err := h.formImage(c); err == nil {
		defer image.close()
		input.Image = image.upload
	}

	post, err := h.postUC.EditPost(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Post edited successfully")
}

// DeletePost handles deleting a post and everything attached to it
func (h *PostHandler) DeletePost(c echo.Context) error {
	var req DeletePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.postUC.DeletePost(c.Request().Context(), uuid.MustParse(req.PostID)); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted successfully")
}

// ToggleLike handles flipping the calling user's like on a post
func (h *PostHandler) ToggleLike(c echo.Context) error {
	var req ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid like input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	post, err := h.postUC.ToggleLike(c.Request().Context(), uuid.MustParse(req.PostID), req.UserID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Like updated successfully")
}

// AddComment handles appending a comment to a post
func (h *PostHandler) AddComment(c echo.Context) error {
	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	post, err := h.postUC.AddComment(c.Request().Context(), uuid.MustParse(req.PostID), req.UserID, req.Comment)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Comment added successfully")
}

// AddDiscount handles applying a percentage discount to a post
func (h *PostHandler) AddDiscount(c echo.Context) error {
	var req AddDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	post, err := h.postUC.ApplyDiscount(c.Request().Context(), uuid.MustParse(req.PostID), req.UserID, req.Discount)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Discount added successfully")
}

// RemoveDiscount handles restoring a post's pre-discount price
func (h *PostHandler) RemoveDiscount(c echo.Context) error {
	var req RemoveDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	post, err := h.postUC.RemoveDiscount(c.Request().Context(), uuid.MustParse(req.PostID), req.UserID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Discount removed successfully")
}

// UpdateStatus handles approving or rejecting a batch of posts
func (h *PostHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	postIDs := make([]uuid.UUID, 0, len(req.PostIDs))
	for _, raw := range req.PostIDs {
		postIDs = append(postIDs, uuid.MustParse(raw))
	}

	if err := h.postUC.UpdateStatus(c.Request().Context(), postIDs, entity.PostStatus(req.Status)); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated successfully for all posts")
}

// ListPosts handles retrieving the joined view of every post
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postUC.ListPosts(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts, "Posts fetched successfully")
}

// ListUserPosts handles retrieving the joined view of one owner's posts
func (h *PostHandler) ListUserPosts(c echo.Context) error {
	var req ListUserPostsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	posts, err := h.postUC.ListUserPosts(c.Request().Context(), req.UserID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts, "Posts fetched successfully")
}

// formFile wraps the opened multipart part so callers can defer the close.
type formFile struct {
	upload *service.ImageUpload
	src    multipart.File
}

func (f *formFile) close() {
	_ = f.src.Close()
}

func (h *PostHandler) formImage(c echo.Context) (*formFile, error) {
	fileHeader, err := c.FormFile("postImage")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &formFile{
		upload: &service.ImageUpload{
			FileName:    fileHeader.Filename,
			ContentType: contentType,
			Size:        fileHeader.Size,
			Body:        src,
		},
		src: src,
	}, nil
}

func (h *PostHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
