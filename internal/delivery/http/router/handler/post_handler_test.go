package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockusecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPostTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newMultipartRequest(t *testing.T, fields map[string]string, withImage bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withImage {
		part, err := writer.CreateFormFile("postImage", "mug.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/post", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestPostHandler_CreatePost(t *testing.T) {
	postUC := mockusecase.NewMockPostUsecase(t)
	h := &PostHandler{postUC: postUC, logger: newTestLogger()}

	req := newMultipartRequest(t, map[string]string{
		"userId":      "user_1",
		"productName": "Handmade mug",
		"caption":     "Glazed stoneware",
		"price":       "200",
	}, true)
	c, rec := newPostTestContext(req)

	postUC.EXPECT().
		CreatePost(mock.Anything, mock.AnythingOfType("*usecase.CreatePostInput")).
		Run(func(ctx context.Context, input *usecase.CreatePostInput) {
			require.Equal(t, "user_1", input.OwnerExternalID)
			require.Equal(t, "Handmade mug", input.ProductName)
			require.InDelta(t, 200.0, input.Price, 0.01)
			require.NotNil(t, input.Image)
			require.Equal(t, "mug.png", input.Image.FileName)
		}).
		Return(&entity.Post{ID: uuid.New(), ProductName: "Handmade mug"}, nil)

	require.NoError(t, h.CreatePost(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Post has been created")
}

func TestPostHandler_CreatePost_MissingImage(t *testing.T) {
	h := &PostHandler{postUC: mockusecase.NewMockPostUsecase(t), logger: newTestLogger()}

	req := newMultipartRequest(t, map[string]string{
		"userId":      "user_1",
		"productName": "Handmade mug",
		"caption":     "Glazed stoneware",
		"price":       "200",
	}, false)
	c, rec := newPostTestContext(req)

	require.NoError(t, h.CreatePost(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "postImage")
}

func TestPostHandler_CreatePost_MissingFields(t *testing.T) {
	h := &PostHandler{postUC: mockusecase.NewMockPostUsecase(t), logger: newTestLogger()}

	req := newMultipartRequest(t, map[string]string{"userId": "user_1"}, true)
	c, rec := newPostTestContext(req)

	require.NoError(t, h.CreatePost(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostHandler_EditPost_InvalidID(t *testing.T) {
	h := &PostHandler{postUC: mockusecase.NewMockPostUsecase(t), logger: newTestLogger()}

	req := newMultipartRequest(t, map[string]string{
		"postid": "not-a-uuid",
		"price":  "100",
	}, false)
	c, rec := newPostTestContext(req)

	require.NoError(t, h.EditPost(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestPostHandler_ToggleLike(t *testing.T) {
	postUC := mockusecase.NewMockPostUsecase(t)
	h := &PostHandler{postUC: postUC, logger: newTestLogger()}

	postID := uuid.New()
	body := `{"postid":"` + postID.String() + `","userId":"user_2"}`
	req := httptest.NewRequest(http.MethodPut, "/post/like", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newPostTestContext(req)

	postUC.EXPECT().
		ToggleLike(mock.Anything, postID, "user_2").
		Return(&entity.Post{ID: postID, Likes: 1}, nil)

	require.NoError(t, h.ToggleLike(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Like updated successfully")
}

func TestPostHandler_ToggleLike_InvalidUUID(t *testing.T) {
	h := &PostHandler{postUC: mockusecase.NewMockPostUsecase(t), logger: newTestLogger()}

	body := `{"postid":"nope","userId":"user_2"}`
	req := httptest.NewRequest(http.MethodPut, "/post/like", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newPostTestContext(req)

	require.NoError(t, h.ToggleLike(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostHandler_UpdateStatus(t *testing.T) {
	postUC := mockusecase.NewMockPostUsecase(t)
	h := &PostHandler{postUC: postUC, logger: newTestLogger()}

	first := uuid.New()
	second := uuid.New()
	body := `{"postIds":["` + first.String() + `","` + second.String() + `"],"status":"approved"}`
	req := httptest.NewRequest(http.MethodPut, "/post/statusUpdate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newPostTestContext(req)

	postUC.EXPECT().
		UpdateStatus(mock.Anything, []uuid.UUID{first, second}, entity.PostStatusApproved).
		Return(nil)

	require.NoError(t, h.UpdateStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Status updated successfully for all posts")
}

func TestPostHandler_ListPosts_NotFound(t *testing.T) {
	postUC := mockusecase.NewMockPostUsecase(t)
	h := &PostHandler{postUC: postUC, logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodGet, "/post", nil)
	c, rec := newPostTestContext(req)

	postUC.EXPECT().ListPosts(mock.Anything).Return(nil, domainerrors.ErrNoPostsFound)

	require.NoError(t, h.ListPosts(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NO_POSTS_FOUND")
}
