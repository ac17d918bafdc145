package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"librehub/internal/api/models"
	"librehub/internal/config"
)

func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.IsProduction() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

func runMigrations(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Book{},
		&models.Loan{},
		&models.Testimonial{},
		&models.Setting{},
		&models.RefreshToken{},
	); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// At most one active loan per (user, book) pair. AutoMigrate cannot
	// express a partial index, so it is created directly.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_loans_active_pair ON loans (user_id, book_id) WHERE NOT returned",
	).Error; err != nil {
		return fmt.Errorf("failed to create active loan index: %w", err)
	}

	logger.Info("Database migrations applied successfully")
	return nil
}
