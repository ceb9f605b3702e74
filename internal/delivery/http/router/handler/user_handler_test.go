package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockusecase "bazaar/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_ListUsers(t *testing.T) {
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodGet, "/user/getAll", nil)
	c, rec := newPostTestContext(req)

	userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{ExternalID: "user_1", FirstName: "Ada", UserName: "ada"},
		{ExternalID: "user_2", FirstName: "Grace", UserName: "grace"},
	}, nil)

	require.NoError(t, h.ListUsers(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Users fetched successfully")
	require.Contains(t, rec.Body.String(), "user_2")
}

func TestUserHandler_ListUsers_Empty(t *testing.T) {
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodGet, "/user/getAll", nil)
	c, rec := newPostTestContext(req)

	userUC.EXPECT().ListUsers(mock.Anything).Return(nil, domainerrors.ErrNoUsersFound)

	require.NoError(t, h.ListUsers(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NO_USERS_FOUND")
}

func TestUserHandler_DeleteUser(t *testing.T) {
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodDelete, "/user/deleteUser", strings.NewReader(`{"userId":"user_1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newPostTestContext(req)

	userUC.EXPECT().DeleteUser(mock.Anything, "user_1").Return(nil)

	require.NoError(t, h.DeleteUser(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User deleted successfully")
}

func TestUserHandler_DeleteUser_MissingID(t *testing.T) {
	h := &UserHandler{userUC: mockusecase.NewMockUserUsecase(t), logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodDelete, "/user/deleteUser", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newPostTestContext(req)

	require.NoError(t, h.DeleteUser(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
