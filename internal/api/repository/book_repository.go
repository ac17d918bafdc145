package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"librehub/internal/api/models"
)

// ErrInsufficientStock is returned by DecrementStock when the conditional
// update matches no row because the book has fewer copies than requested.
var ErrInsufficientStock = errors.New("insufficient stock")

// BookFilter narrows catalog listings.
type BookFilter struct {
	CategoryID string
	InStock    bool
}

type BookRepository interface {
	GetAll(ctx context.Context, filter BookFilter) ([]models.Book, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id string) error
	SetStock(ctx context.Context, id string, quantity int) error
	DecrementStock(ctx context.Context, id string, n int) error
	IncrementStock(ctx context.Context, id string, n int) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) GetAll(ctx context.Context, filter BookFilter) ([]models.Book, error) {
	var books []models.Book

	q := r.db.WithContext(ctx).Preload("Category")
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.InStock {
		q = q.Where("stock > 0")
	}

	if err := q.Order("created_at DESC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).Preload("Category").First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).First(&book, "isbn = ?", isbn).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookRepository) SetStock(ctx context.Context, id string, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ?", id).
		UpdateColumn("stock", quantity)
	if result.Error != nil {
		return fmt.Errorf("set stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementStock is the oversell guard: a single conditional UPDATE that only
// matches while enough copies remain. Concurrent decrements serialize on the
// row, so stock can never go negative.
func (r *bookRepository) DecrementStock(ctx context.Context, id string, n int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ? AND stock >= ?", id, n).
		UpdateColumn("stock", gorm.Expr("stock - ?", n))
	if result.Error != nil {
		return fmt.Errorf("decrement stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *bookRepository) IncrementStock(ctx context.Context, id string, n int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", n))
	if result.Error != nil {
		return fmt.Errorf("increment stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
