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

type TestimonialHandler struct {
	svc service.TestimonialService
}

func NewTestimonialHandler(svc service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

func (h *TestimonialHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("", h.List)

	authed := rg.Group("", authMW)
	{
		authed.POST("", h.Create)
		authed.PUT("/:testimonial_id", h.Update)
		authed.DELETE("/:testimonial_id", h.Delete)
		authed.POST("/:testimonial_id/approve", middleware.RequireRole("admin"), h.Approve)
	}
}

// List shows approved testimonials to everyone; admins may request all of
// them with ?all=true.
func (h *TestimonialHandler) List(c *gin.Context) {
	approvedOnly := !(c.Query("all") == "true" && currentRole(c) == "admin")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	testimonials, err := h.svc.GetAll(ctx, approvedOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": testimonials, "total": len(testimonials)})
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	testimonial := req.ToModel()
	created, err := h.svc.Create(ctx, userID, &testimonial)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	testimonial := req.ToModel()
	updated, err := h.svc.Update(ctx, c.Param("testimonial_id"), userID, currentRole(c), &testimonial)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *TestimonialHandler) Approve(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	testimonial, err := h.svc.Approve(ctx, c.Param("testimonial_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("testimonial_id"), userID, currentRole(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
