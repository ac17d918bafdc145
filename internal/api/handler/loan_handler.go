package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"librehub/internal/api/dto"
	"librehub/internal/api/middleware"
	"librehub/internal/api/models"
	"librehub/internal/api/repository"
	"librehub/internal/api/service"
)

type LoanHandler struct {
	svc service.LoanService
}

func NewLoanHandler(svc service.LoanService) *LoanHandler {
	return &LoanHandler{svc: svc}
}

func (h *LoanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", middleware.RequireRole("librarian", "admin"), h.List)
	rg.GET("/my-loans", h.ListMine)
	rg.GET("/overdue", middleware.RequireRole("librarian", "admin"), h.ListOverdue)
	rg.GET("/:loan_id", h.Get)
	rg.PUT("/:loan_id", h.Update)
	rg.POST("/:loan_id/return", h.Return)
	rg.DELETE("/:loan_id", middleware.RequireRole("librarian", "admin"), h.Delete)
}

// Create borrows a book for the authenticated user
func (h *LoanHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loan, err := h.svc.Create(ctx, userID, req.BookID, req.ReturnDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToLoanResponse(loan))
}

// List returns all loans, optionally filtered by status and user
func (h *LoanHandler) List(c *gin.Context) {
	filter := repository.LoanFilter{
		Status: models.LoanStatus(c.Query("status")),
		UserID: c.Query("user_id"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loans, err := h.svc.GetAll(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLoanListResponse(loans))
}

// ListMine returns the authenticated user's loans
func (h *LoanHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loans, err := h.svc.GetByUser(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLoanListResponse(loans))
}

// ListOverdue returns unreturned loans past their due date
func (h *LoanHandler) ListOverdue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loans, err := h.svc.GetOverdue(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLoanListResponse(loans))
}

func (h *LoanHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loan, err := h.svc.GetByID(ctx, c.Param("loan_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToLoanResponse(loan))
}

// Update changes the due date of an unreturned loan
func (h *LoanHandler) Update(c *gin.Context) {
	var req dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loan, err := h.svc.Update(ctx, c.Param("loan_id"), req.ReturnDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToLoanResponse(loan))
}

// Return marks a loan as returned and restores the book's stock
func (h *LoanHandler) Return(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loan, err := h.svc.Return(ctx, c.Param("loan_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToLoanResponse(loan))
}

// Delete removes a loan record, restoring stock if it was still active
func (h *LoanHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("loan_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
