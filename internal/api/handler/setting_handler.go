package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"librehub/internal/api/dto"
	"librehub/internal/api/middleware"
	"librehub/internal/api/service"
)

type SettingHandler struct {
	svc service.SettingService
}

func NewSettingHandler(svc service.SettingService) *SettingHandler {
	return &SettingHandler{svc: svc}
}

func (h *SettingHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("", h.Get)
	rg.PUT("", authMW, middleware.RequireRole("admin"), h.Update)
}

func (h *SettingHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	setting, err := h.svc.Get(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

func (h *SettingHandler) Update(c *gin.Context) {
	var req dto.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	setting := req.ToModel()
	updated, err := h.svc.Update(ctx, &setting)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
