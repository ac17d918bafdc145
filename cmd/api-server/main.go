package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"librehub/database"
	"librehub/internal/api/handler"
	"librehub/internal/api/middleware"
	"librehub/internal/api/repository"
	"librehub/internal/api/service"
	"librehub/internal/cache"
	"librehub/internal/config"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	// Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Redis is optional: a nil cache degrades to database reads
	redisCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Warn("Redis unavailable, running without cache", "error", err)
		redisCache = nil
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	bookRepo := repository.NewBookRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo, refreshTokenRepo)
	bookService := service.NewBookService(bookRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	loanService := service.NewLoanService(loanRepo, bookRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	settingService := service.NewSettingService(settingRepo, redisCache, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tokenHandler := handler.NewTokenHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	loanHandler := handler.NewLoanHandler(loanService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	settingHandler := handler.NewSettingHandler(settingService)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	authMW := middleware.AuthMiddleware(authService)

	api := r.Group("/api", middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		authHandler.RegisterRoutes(api.Group("/auth"))
		userHandler.RegisterRoutes(api.Group("/users", authMW))
		tokenHandler.RegisterRoutes(api.Group("/tokens", authMW))
		bookHandler.RegisterRoutes(api.Group("/books"), authMW)
		categoryHandler.RegisterRoutes(api.Group("/categories"), authMW)
		loanHandler.RegisterRoutes(api.Group("/loans", authMW))
		testimonialHandler.RegisterRoutes(api.Group("/testimonials"), authMW)
		settingHandler.RegisterRoutes(api.Group("/settings"), authMW)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
