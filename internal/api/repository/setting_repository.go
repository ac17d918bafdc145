package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"librehub/internal/api/models"
)

type SettingRepository interface {
	Get(ctx context.Context) (*models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Get returns the singleton settings row, creating it with defaults on first
// access.
func (r *settingRepository) Get(ctx context.Context) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{SiteName: "LibreHub", MaxLoanDays: 14}
		if err := r.db.WithContext(ctx).Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("create default settings: %w", err)
		}
		return &setting, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &setting, nil
}

func (r *settingRepository) Upsert(ctx context.Context, setting *models.Setting) error {
	if err := r.db.WithContext(ctx).Save(setting).Error; err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
