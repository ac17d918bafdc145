package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"librehub/internal/api/apperr"
	"librehub/internal/api/dto"
	"librehub/internal/api/middleware"
	"librehub/internal/api/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", middleware.RequireRole("admin"), h.List)
	rg.GET("/:user_id", h.Get)
	rg.PUT("/:user_id", h.Update)
	rg.DELETE("/:user_id", middleware.RequireRole("admin"), h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// Get returns an account; users can only read their own unless admin.
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetID := c.Param("user_id")
	if targetID != userID && currentRole(c) != "admin" {
		respondError(c, apperr.PermissionDenied("cannot view another user's account"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.svc.GetByID(ctx, targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

// Update edits an account; self-service for name and email, admin for
// everything including role.
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetID := c.Param("user_id")
	isAdmin := currentRole(c) == "admin"
	if targetID != userID && !isAdmin {
		respondError(c, apperr.PermissionDenied("cannot update another user's account"))
		return
	}
	if req.Role != nil && !isAdmin {
		respondError(c, apperr.PermissionDenied("only admins can change roles"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.svc.Update(ctx, targetID, req.Name, req.Email, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
