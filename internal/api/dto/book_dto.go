package dto

import (
	"librehub/internal/api/models"
)

// CreateBookRequest used for POST /api/books
type CreateBookRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Author      *string `json:"author,omitempty"`
	ISBN        *string `json:"isbn,omitempty"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"category_id" binding:"required"`
	CoverURL    *string `json:"cover_url,omitempty"`
	Pages       *int    `json:"pages,omitempty"`
	Year        *int    `json:"year,omitempty"`
}

// UpdateBookRequest used for PUT /api/books/:book_id (partial updates allowed)
type UpdateBookRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Author      *string  `json:"author,omitempty"`
	ISBN        *string  `json:"isbn,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
	CoverURL    *string  `json:"cover_url,omitempty"`
	Pages       *int     `json:"pages,omitempty"`
	Year        *int     `json:"year,omitempty"`
}

// SetStockRequest used for PATCH /api/books/:book_id/stock
type SetStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

func (d CreateBookRequest) ToModel() models.Book {
	return models.Book{
		Name:        d.Name,
		Description: d.Description,
		Author:      d.Author,
		ISBN:        d.ISBN,
		Price:       d.Price,
		Stock:       d.Stock,
		CategoryID:  d.CategoryID,
		CoverURL:    d.CoverURL,
		Pages:       d.Pages,
		Year:        d.Year,
	}
}

func (d UpdateBookRequest) ApplyTo(b *models.Book) {
	if d.Name != nil {
		b.Name = *d.Name
	}
	if d.Description != nil {
		b.Description = d.Description
	}
	if d.Author != nil {
		b.Author = d.Author
	}
	if d.ISBN != nil {
		b.ISBN = d.ISBN
	}
	if d.Price != nil {
		b.Price = *d.Price
	}
	if d.CategoryID != nil {
		b.CategoryID = *d.CategoryID
	}
	if d.CoverURL != nil {
		b.CoverURL = d.CoverURL
	}
	if d.Pages != nil {
		b.Pages = d.Pages
	}
	if d.Year != nil {
		b.Year = d.Year
	}
}
