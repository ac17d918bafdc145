package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"librehub/internal/api/models"
)

type TestimonialRepository interface {
	GetAll(ctx context.Context, approvedOnly bool) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	Create(ctx context.Context, testimonial *models.Testimonial) error
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id string) error
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) GetAll(ctx context.Context, approvedOnly bool) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial

	q := r.db.WithContext(ctx).Preload("User")
	if approvedOnly {
		q = q.Where("approved = ?", true)
	}

	if err := q.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, nil
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := r.db.WithContext(ctx).Preload("User").First(&testimonial, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	if err := r.db.WithContext(ctx).Create(testimonial).Error; err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	if err := r.db.WithContext(ctx).Save(testimonial).Error; err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
