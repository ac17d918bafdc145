package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"librehub/internal/api/dto"
	"librehub/internal/api/handler"
	"librehub/internal/api/models"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, name, email, role *string) (*models.User, error) {
	args := m.Called(ctx, id, name, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupUserRouter(mockService *MockUserService, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewUserHandler(mockService)

	rg := r.Group("/api/users", mockAuthMiddleware(userID, role))
	h.RegisterRoutes(rg)
	return r
}

func TestListUsersHandler(t *testing.T) {
	t.Run("AdminSeesAll", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc, "admin-1", "admin")

		svc.On("GetAll", mock.Anything).Return([]models.User{
			{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: "user"},
		}, nil)

		w := performRequest(r, http.MethodGet, "/api/users", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("PlainUserForbidden", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc, "user-1", "user")

		w := performRequest(r, http.MethodGet, "/api/users", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "GetAll", mock.Anything)
	})
}

func TestGetUserHandler(t *testing.T) {
	t.Run("SelfAllowed", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc, "u1", "user")

		svc.On("GetByID", mock.Anything, "u1").
			Return(&models.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: "user"}, nil)

		w := performRequest(r, http.MethodGet, "/api/users/u1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("OtherAccountForbidden", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc, "u1", "user")

		w := performRequest(r, http.MethodGet, "/api/users/u2", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("AdminReadsAnyAccount", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc, "admin-1", "admin")

		svc.On("GetByID", mock.Anything, "u2").
			Return(&models.User{ID: "u2", Name: "Grace", Email: "grace@example.com", Role: "user"}, nil)

		w := performRequest(r, http.MethodGet, "/api/users/u2", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	t.Run("RoleChangeByNonAdminForbidden", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc, "u1", "user")

		role := "admin"
		w := performRequest(r, http.MethodPut, "/api/users/u1", dto.UpdateUserRequest{Role: &role})

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SelfEdit", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc, "u1", "user")

		name := "Ada L."
		svc.On("Update", mock.Anything, "u1", mock.AnythingOfType("*string"), (*string)(nil), (*string)(nil)).
			Return(&models.User{ID: "u1", Name: name, Email: "ada@example.com", Role: "user"}, nil)

		w := performRequest(r, http.MethodPut, "/api/users/u1", dto.UpdateUserRequest{Name: &name})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	t.Run("AdminDeletes", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc, "admin-1", "admin")

		svc.On("Delete", mock.Anything, "u1").Return(nil)

		w := performRequest(r, http.MethodDelete, "/api/users/u1", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		svc := new(MockUserService)
		r := setupUserRouter(svc, "u1", "user")

		w := performRequest(r, http.MethodDelete, "/api/users/u1", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
