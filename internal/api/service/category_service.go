package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"librehub/internal/api/apperr"
	"librehub/internal/api/models"
	"librehub/internal/api/repository"
)

type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	Update(ctx context.Context, id string, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if _, err := s.repo.FindByName(ctx, category.Name); err == nil {
		return nil, apperr.InvalidOperation("a category with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, category *models.Category) (*models.Category, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}

	if category.Name != existing.Name {
		if other, err := s.repo.FindByName(ctx, category.Name); err == nil && other.ID != id {
			return nil, apperr.InvalidOperation("a category with this name already exists")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	category.ID = id
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	count, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.InvalidOperation("cannot delete a category that still has books")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("category not found")
		}
		return err
	}
	return nil
}
