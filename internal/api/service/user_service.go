package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"librehub/internal/api/apperr"
	"librehub/internal/api/models"
	"librehub/internal/api/repository"
)

// UserService handles account administration. Credentials never change
// through here; password handling stays in AuthService.
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, name, email, role *string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
}

func NewUserService(userRepo repository.UserRepository, refreshTokenRepo repository.RefreshTokenRepository) UserService {
	return &userService{userRepo: userRepo, refreshTokenRepo: refreshTokenRepo}
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// Update edits name, email and role. A new email must not belong to another
// account.
func (s *userService) Update(ctx context.Context, id string, name, email, role *string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	if email != nil && *email != user.Email {
		other, err := s.userRepo.FindByEmail(ctx, *email)
		if err == nil && other.ID != id {
			return nil, apperr.InvalidOperation("email already in use")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *email
	}
	if name != nil {
		user.Name = *name
	}
	if role != nil {
		user.Role = *role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account and every refresh token it holds.
func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return err
	}
	_, err := s.refreshTokenRepo.DeleteByUser(ctx, id)
	return err
}
