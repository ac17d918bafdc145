package dto

import (
	"time"

	"librehub/internal/api/models"
)

// CreateLoanRequest used for POST /api/loans
type CreateLoanRequest struct {
	BookID     string    `json:"book_id" binding:"required"`
	ReturnDate time.Time `json:"return_date" binding:"required"`
}

// UpdateLoanRequest used for PUT /api/loans/:loan_id (due-date change only)
type UpdateLoanRequest struct {
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// UserSummary is the borrower projection embedded in loan responses.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookSummary is the catalog projection embedded in loan responses.
type BookSummary struct {
	Name   string  `json:"name"`
	Author *string `json:"author,omitempty"`
	Stock  int     `json:"stock"`
}

type LoanResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	BookID     string            `json:"book_id"`
	LoanDate   time.Time         `json:"loan_date"`
	ReturnDate time.Time         `json:"return_date"`
	Returned   bool              `json:"returned"`
	Status     models.LoanStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	User       *UserSummary      `json:"user,omitempty"`
	Book       *BookSummary      `json:"book,omitempty"`
}

type LoanListResponse struct {
	Items []LoanResponse `json:"items"`
	Total int            `json:"total"`
}

func FromModelToLoanResponse(l *models.Loan) LoanResponse {
	resp := LoanResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		BookID:     l.BookID,
		LoanDate:   l.LoanDate,
		ReturnDate: l.ReturnDate,
		Returned:   l.Returned,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt,
	}
	if l.User != nil {
		resp.User = &UserSummary{Name: l.User.Name, Email: l.User.Email}
	}
	if l.Book != nil {
		resp.Book = &BookSummary{Name: l.Book.Name, Author: l.Book.Author, Stock: l.Book.Stock}
	}
	return resp
}

func NewLoanListResponse(loans []models.Loan) LoanListResponse {
	items := make([]LoanResponse, 0, len(loans))
	for i := range loans {
		items = append(items, FromModelToLoanResponse(&loans[i]))
	}
	return LoanListResponse{Items: items, Total: len(items)}
}
