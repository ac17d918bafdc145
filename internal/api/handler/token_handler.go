package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"librehub/internal/api/middleware"
	"librehub/internal/api/service"
)

// TokenHandler exposes admin maintenance over stored refresh tokens.
type TokenHandler struct {
	svc service.AuthService
}

func NewTokenHandler(svc service.AuthService) *TokenHandler {
	return &TokenHandler{svc: svc}
}

func (h *TokenHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.Use(middleware.RequireRole("admin"))
	rg.DELETE("/cleanup", h.Cleanup)
	rg.DELETE("/user/:user_id", h.RevokeUser)
}

// Cleanup purges refresh tokens past their expiry
func (h *TokenHandler) Cleanup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.svc.CleanupExpiredTokens(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// RevokeUser ends every session of the given user
func (h *TokenHandler) RevokeUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.svc.RevokeUserTokens(ctx, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
