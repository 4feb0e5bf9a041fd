package app

import (
	"fmt"
	"os"
	"time"

	"devstudio_backend/internal/auth"
	"devstudio_backend/internal/config"
	"devstudio_backend/internal/email"
	"devstudio_backend/internal/handlers"
	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/middleware"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/internal/routes"
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/validator"
	"devstudio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(!cfg.IsProduction())

	logger.Info("Connecting to database...")
	// TranslateError нужен, чтобы нарушение уникального индекса
	// приходило как gorm.ErrDuplicatedKey, а не сырой ошибкой драйвера.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// AutoMigrate приводит схему БД к актуальным моделям.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Review{},
		&models.Service{},
		&models.TeamMember{},
		&models.Contact{},
		&models.HomePageHero{},
	)
}

// SetupRouter собирает полный HTTP-стек поверх подключения к БД.
// Вынесен отдельно, чтобы интеграционные тесты могли поднять роутер
// без реального сервера.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenCodec(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.AccessTTLMin)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTLDays)*24*time.Hour,
	)

	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
		})
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NewNoopProvider()
		logger.Warn("Email sending disabled, messages will be logged only")
	}

	serviceContainer := services.NewServiceContainer(gormDB, services.Deps{
		Hasher:        hasher,
		Tokens:        tokens,
		EmailProvider: emailProvider,
		PublicURL:     cfg.Server.PublicURL,
	})

	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New(), handlers.CookieConfig{
		Secure:        cfg.IsProduction(),
		AccessMaxAge:  cfg.JWT.AccessTTLMin * 60,
		RefreshMaxAge: cfg.JWT.RefreshTTLDays * 24 * 60 * 60,
	})

	gate := middleware.NewAuthGate(tokens, repositories.NewUserRepository(gormDB))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		gin.Recovery(),
	)

	routes.RegisterRoutes(ginRouter, appHandlers, gate)

	return ginRouter
}

// seedFirstAdmin создает первого администратора из переменных окружения
// ADMIN_EMAIL и ADMIN_PASSWORD, если в БД еще нет ни одного админа.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		logger.Info("Admin seed skipped: ADMIN_EMAIL / ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	passwordHash, err := hasher.Hash(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("First admin user seeded", "email", adminEmail)
	return nil
}
