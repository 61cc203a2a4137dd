package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"campushire_backend/database"
	"campushire_backend/internal/auth"
	"campushire_backend/internal/cache"
	"campushire_backend/internal/config"
	"campushire_backend/internal/email"
	"campushire_backend/internal/handlers"
	"campushire_backend/internal/imageprocessor"
	"campushire_backend/internal/logger"
	"campushire_backend/internal/middleware"
	"campushire_backend/internal/models"
	"campushire_backend/internal/repositories"
	"campushire_backend/internal/routes"
	"campushire_backend/internal/services"
	"campushire_backend/internal/storage"
	"campushire_backend/internal/validator"
	"campushire_backend/internal/workers"
	"campushire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Debug)
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Database connected")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// без админа некому верифицировать jobholder'ов
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	redisClient := initRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	storageInstance, err := newStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type, "path", cfg.Storage.BasePath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if interval := cfg.SweepInterval(); interval > 0 {
		workers.NewImageSweeper(gormDB, storageInstance, repositories.NewJobRepository(), cfg.SweepGrace()).Start(ctx, interval)
		logger.Info("Image sweeper started", "interval", interval)
	}

	ginRouter := SetupRouter(cfg, gormDB, redisClient, storageInstance)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SetupRouter собирает сервисы, хэндлеры и маршруты.
// redisClient может быть nil: тогда лента колледжа читается прямо из БД.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, storageInstance storage.Storage) *gin.Engine {
	// 1. Сервисы
	serviceContainer := initializeServices(cfg, storageInstance, redisClient)

	// 2. Хэндлеры
	appHandlers := initializeHandlers(serviceContainer, redisClient)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Маршруты
	routes.RegisterRoutes(ginRouter, appHandlers, serviceContainer.Tokens)

	return ginRouter
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	return storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, redisClient *redis.Client) *services.ServiceContainer {
	emailProvider := newEmailProvider(cfg)

	// --- Репозитории ---
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	questionRepo := repositories.NewQuestionRepository()
	reviewRepo := repositories.NewReviewRepository()

	// --- Сервисы ---
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.TokenTTL())
	emailService := services.NewEmailService(emailProvider, cfg.Email.LoginURL)
	jobCache := cache.NewJobListCache(redisClient, cfg.CacheTTL())

	uploadConfig := services.UploadConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
		Images:       imageprocessor.NewProcessor(85, imageprocessor.SizeLogo),
	}

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, tokens),
		UserService:     services.NewUserService(userRepo, emailService),
		JobService:      services.NewJobService(jobRepo, questionRepo, reviewRepo, storageInstance, jobCache, uploadConfig),
		QuestionService: services.NewQuestionService(questionRepo, jobRepo),
		ReviewService:   services.NewReviewService(reviewRepo, jobRepo),
		EmailService:    emailService,
		Tokens:          tokens,
		Storage:         storageInstance,
	}
}

func initializeHandlers(services *services.ServiceContainer, redisClient *redis.Client) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, services.AuthService),
		AdminHandler:    handlers.NewAdminHandler(baseHandler, services.UserService),
		JobHandler:      handlers.NewJobHandler(baseHandler, services.JobService),
		QuestionHandler: handlers.NewQuestionHandler(baseHandler, services.QuestionService),
		ReviewHandler:   handlers.NewReviewHandler(baseHandler, services.ReviewService),
		FileHandler:     handlers.NewFileHandler(baseHandler, services.Storage),
		HealthHandler:   handlers.NewHealthHandler(baseHandler, redisClient),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	// multipart с картинкой держим в памяти до лимита загрузки
	router.MaxMultipartMemory = cfg.Upload.MaxSize + 1<<20
	return router
}

// newEmailProvider - без SMTP хоста письма только логируются
func newEmailProvider(cfg *config.Config) email.Provider {
	smtpCfg := &email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
	if !smtpCfg.Enabled() {
		logger.Warn("SMTP host is not set, notification emails will only be logged")
		return &MockEmailProvider{}
	}

	templates, err := email.NewDefaultTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}

	provider := email.NewSMTPProvider(smtpCfg, templates)
	if err := provider.Validate(); err != nil {
		logger.Fatal("Invalid SMTP configuration", "error", err)
	}
	return provider
}

// initRedis возвращает nil, если Redis не настроен или недоступен
func initRedis(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis is not configured, job listing cache disabled")
		return nil
	}

	client, err := cache.NewClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("Redis unavailable, job listing cache disabled", "error", err.Error())
		return nil
	}
	logger.Info("Redis connected", "addr", cfg.Redis.Addr)
	return client
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := strings.ToLower(strings.TrimSpace(cfg.FirstAdminEmail))
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	username := cfg.FirstAdminUsername
	if username == "" {
		username = "admin"
	}
	college := cfg.FirstAdminCollege
	if college == "" {
		college = "CampusHire"
	}

	newAdmin := &models.User{
		Username:     username,
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		College:      college,
		IsVerified:   true,
	}

	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)

	return tx.Commit().Error
}
