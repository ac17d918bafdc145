package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"librehub/internal/api/apperr"
	"librehub/internal/api/models"
	"librehub/internal/api/repository"
	"librehub/internal/cache"
)

const settingsCacheKey = "settings:site"

type SettingService interface {
	Get(ctx context.Context) (*models.Setting, error)
	Update(ctx context.Context, setting *models.Setting) (*models.Setting, error)
}

type settingService struct {
	repo   repository.SettingRepository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewSettingService(repo repository.SettingRepository, c *cache.Cache, logger *slog.Logger) SettingService {
	return &settingService{repo: repo, cache: c, logger: logger}
}

// Get serves the site-settings singleton, preferring the Redis copy. Cache
// failures degrade to a database read.
func (s *settingService) Get(ctx context.Context) (*models.Setting, error) {
	if raw, ok, err := s.cache.Get(ctx, settingsCacheKey); err != nil {
		s.logger.Warn("settings cache read failed", "error", err)
	} else if ok {
		var setting models.Setting
		if err := json.Unmarshal([]byte(raw), &setting); err == nil {
			return &setting, nil
		}
		s.logger.Warn("settings cache entry corrupt, falling back to database")
	}

	setting, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(setting); err == nil {
		if err := s.cache.Set(ctx, settingsCacheKey, string(raw)); err != nil {
			s.logger.Warn("settings cache write failed", "error", err)
		}
	}
	return setting, nil
}

func (s *settingService) Update(ctx context.Context, setting *models.Setting) (*models.Setting, error) {
	if setting.MaxLoanDays < 1 {
		return nil, apperr.InvalidOperation("max loan days must be at least 1")
	}

	existing, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	existing.SiteName = setting.SiteName
	existing.ContactEmail = setting.ContactEmail
	existing.MaxLoanDays = setting.MaxLoanDays
	existing.Maintenance = setting.Maintenance

	if err := s.repo.Upsert(ctx, existing); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, settingsCacheKey); err != nil {
		s.logger.Warn("settings cache invalidation failed", "error", err)
	}
	return existing, nil
}
