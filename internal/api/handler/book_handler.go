package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"librehub/internal/api/dto"
	"librehub/internal/api/middleware"
	"librehub/internal/api/repository"
	"librehub/internal/api/service"
)

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:book_id", h.Get)

	admin := rg.Group("", authMW, middleware.RequireRole("librarian", "admin"))
	{
		admin.POST("", h.Create)
		admin.PUT("/:book_id", h.Update)
		admin.DELETE("/:book_id", h.Delete)
		admin.PATCH("/:book_id/stock", h.SetStock)
	}
}

func (h *BookHandler) List(c *gin.Context) {
	filter := repository.BookFilter{
		CategoryID: c.Query("category_id"),
		InStock:    c.Query("in_stock") == "true",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	books, err := h.svc.GetAll(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": books, "total": len(books)})
}

func (h *BookHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.svc.GetByID(ctx, c.Param("book_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book := req.ToModel()
	created, err := h.svc.Create(ctx, &book)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookHandler) Update(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	id := c.Param("book_id")
	existing, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	req.ApplyTo(existing)
	updated, err := h.svc.Update(ctx, id, existing)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *BookHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("book_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetStock sets the absolute stock level of a book
func (h *BookHandler) SetStock(c *gin.Context) {
	var req dto.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.svc.SetStock(ctx, c.Param("book_id"), *req.Stock)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}
