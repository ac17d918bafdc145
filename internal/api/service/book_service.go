package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"librehub/internal/api/apperr"
	"librehub/internal/api/models"
	"librehub/internal/api/repository"
)

type BookService interface {
	GetAll(ctx context.Context, filter repository.BookFilter) ([]models.Book, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) (*models.Book, error)
	Update(ctx context.Context, id string, book *models.Book) (*models.Book, error)
	Delete(ctx context.Context, id string) error
	SetStock(ctx context.Context, id string, quantity int) (*models.Book, error)
}

type bookService struct {
	bookRepo     repository.BookRepository
	categoryRepo repository.CategoryRepository
}

func NewBookService(bookRepo repository.BookRepository, categoryRepo repository.CategoryRepository) BookService {
	return &bookService{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *bookService) GetAll(ctx context.Context, filter repository.BookFilter) ([]models.Book, error) {
	return s.bookRepo.GetAll(ctx, filter)
}

func (s *bookService) GetByID(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("book not found")
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	if _, err := s.categoryRepo.GetByID(ctx, book.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}

	if book.ISBN != nil {
		if _, err := s.bookRepo.GetByISBN(ctx, *book.ISBN); err == nil {
			return nil, apperr.InvalidOperation("a book with this ISBN already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, book.ID)
}

func (s *bookService) Update(ctx context.Context, id string, book *models.Book) (*models.Book, error) {
	existing, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("book not found")
		}
		return nil, err
	}

	if book.CategoryID != "" && book.CategoryID != existing.CategoryID {
		if _, err := s.categoryRepo.GetByID(ctx, book.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("category not found")
			}
			return nil, err
		}
	}

	if book.ISBN != nil && (existing.ISBN == nil || *book.ISBN != *existing.ISBN) {
		if other, err := s.bookRepo.GetByISBN(ctx, *book.ISBN); err == nil && other.ID != id {
			return nil, apperr.InvalidOperation("a book with this ISBN already exists")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	book.ID = id
	// Stock is managed through the stock endpoints and the loan lifecycle,
	// never through a catalog update.
	book.Stock = existing.Stock
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("book not found")
		}
		return err
	}
	return nil
}

func (s *bookService) SetStock(ctx context.Context, id string, quantity int) (*models.Book, error) {
	if quantity < 0 {
		return nil, apperr.InvalidOperation("stock cannot be negative")
	}
	if err := s.bookRepo.SetStock(ctx, id, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("book not found")
		}
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, id)
}
