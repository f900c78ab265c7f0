package app

import (
	"fmt"
	"time"

	"navigator_backend/internal/auth"
	"navigator_backend/internal/config"
	"navigator_backend/internal/email"
	"navigator_backend/internal/handlers"
	"navigator_backend/internal/imageprocessor"
	"navigator_backend/internal/logger"
	"navigator_backend/internal/middleware"
	"navigator_backend/internal/models"
	"navigator_backend/internal/repositories"
	"navigator_backend/internal/routes"
	"navigator_backend/internal/services"
	"navigator_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

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

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
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

// SetupRouter builds the full gin engine from configuration and an open
// database handle. Tests use it directly against their own handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// Repositories
	userRepo := repositories.NewUserRepository(gormDB)
	orgRepo := repositories.NewOrganizationRepository(gormDB)
	moduleRepo := repositories.NewModuleRepository(gormDB)
	articleRepo := repositories.NewArticleRepository(gormDB)
	formRepo := repositories.NewFormRepository(gormDB)
	responseRepo := repositories.NewFormResponseRepository(gormDB)
	fileRepo := repositories.NewFileRepository(gormDB)

	// Shared components
	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	processor := imageprocessor.NewProcessor(
		cfg.Upload.ImageMaxWidth, cfg.Upload.ImageMaxHeight, cfg.Upload.ImageQuality)

	var emailProvider email.Provider = &email.NoopProvider{}
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	}

	// Services
	authService := services.NewAuthService(userRepo, orgRepo, tokens, emailProvider)
	moduleService := services.NewModuleService(moduleRepo)
	articleService := services.NewArticleService(articleRepo, moduleRepo)
	formService := services.NewFormService(formRepo, moduleRepo)
	responseService := services.NewFormResponseService(responseRepo, formRepo, userRepo)
	fileService := services.NewFileService(fileRepo, processor, cfg.Upload.MaxSize)

	// Handlers
	v := validator.New()
	base := handlers.NewBaseHandler(v)
	authMW := middleware.NewAuthMiddleware(tokens, userRepo)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(base, authService, authMW),
		ModuleHandler:  handlers.NewModuleHandler(base, moduleService, articleService, formService, authMW),
		ArticleHandler: handlers.NewArticleHandler(base, articleService, authMW),
		FormHandler:    handlers.NewFormHandler(base, formService, responseService, authMW),
		FileHandler:    handlers.NewFileHandler(base, fileService, authMW),
	}

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Module{},
		&models.Article{},
		&models.Form{},
		&models.FormResponse{},
		&models.File{},
	)
}

// seedFirstAdmin makes sure at least one admin exists so the CMS is operable
// on a fresh database. No-op when the configured email is absent or taken.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin seed skipped: no admin credentials configured")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.Admin.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	admin := &models.User{
		Name:         name,
		Email:        cfg.Admin.Email,
		PasswordHash: hashed,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("Seeded first admin user", "email", cfg.Admin.Email)
	return nil
}
