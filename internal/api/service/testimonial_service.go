package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"librehub/internal/api/apperr"
	"librehub/internal/api/models"
	"librehub/internal/api/repository"
)

type TestimonialService interface {
	GetAll(ctx context.Context, approvedOnly bool) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	Create(ctx context.Context, userID string, testimonial *models.Testimonial) (*models.Testimonial, error)
	Update(ctx context.Context, id, actorID, actorRole string, testimonial *models.Testimonial) (*models.Testimonial, error)
	Approve(ctx context.Context, id string) (*models.Testimonial, error)
	Delete(ctx context.Context, id, actorID, actorRole string) error
}

type testimonialService struct {
	repo repository.TestimonialRepository
}

func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) GetAll(ctx context.Context, approvedOnly bool) ([]models.Testimonial, error) {
	return s.repo.GetAll(ctx, approvedOnly)
}

func (s *testimonialService) GetByID(ctx context.Context, id string) (*models.Testimonial, error) {
	testimonial, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("testimonial not found")
		}
		return nil, err
	}
	return testimonial, nil
}

func (s *testimonialService) Create(ctx context.Context, userID string, testimonial *models.Testimonial) (*models.Testimonial, error) {
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return nil, apperr.InvalidOperation("rating must be between 1 and 5")
	}

	testimonial.UserID = userID
	testimonial.Approved = false
	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, testimonial.ID)
}

// Update lets the author edit their own testimonial; admins may edit any.
func (s *testimonialService) Update(ctx context.Context, id, actorID, actorRole string, testimonial *models.Testimonial) (*models.Testimonial, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("testimonial not found")
		}
		return nil, err
	}

	if existing.UserID != actorID && actorRole != "admin" {
		return nil, apperr.PermissionDenied("you can only edit your own testimonial")
	}

	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return nil, apperr.InvalidOperation("rating must be between 1 and 5")
	}

	existing.Content = testimonial.Content
	existing.Rating = testimonial.Rating
	// Edits go back through moderation.
	existing.Approved = false

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *testimonialService) Approve(ctx context.Context, id string) (*models.Testimonial, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("testimonial not found")
		}
		return nil, err
	}

	existing.Approved = true
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *testimonialService) Delete(ctx context.Context, id, actorID, actorRole string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("testimonial not found")
		}
		return err
	}

	if existing.UserID != actorID && actorRole != "admin" {
		return apperr.PermissionDenied("you can only delete your own testimonial")
	}

	return s.repo.Delete(ctx, id)
}
