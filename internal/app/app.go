package app

import (
	"context"
	"fmt"
	"time"

	"agencyportal/internal/assets"
	"agencyportal/internal/config"
	"agencyportal/internal/docstore"
	"agencyportal/internal/email"
	"agencyportal/internal/handlers"
	"agencyportal/internal/identity"
	"agencyportal/internal/logger"
	"agencyportal/internal/middleware"
	"agencyportal/internal/repositories"
	"agencyportal/internal/routes"
	"agencyportal/internal/services"
	"agencyportal/internal/storage"
	"agencyportal/internal/validator"
	"agencyportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	playgroundvalidator "github.com/go-playground/validator/v10"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	store, err := docstore.NewGormStore(gormDB)
	if err != nil {
		logger.Fatal("Failed to initialize document store", "error", err)
	}

	router := SetupRouter(cfg, store)

	if err := seedFirstAdmin(context.Background(), cfg, store); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full handler chain on top of the given document
// store. Tests call it with a memory store.
func SetupRouter(cfg *config.Config, store docstore.Store) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	assetManager := assets.NewManager(storageInstance, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)

	tokens := identity.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
	provider := identity.NewStoreProvider(store, tokens,
		time.Duration(cfg.JWT.RefreshTTL)*time.Hour,
		identity.FederatedConfig{
			Issuer: cfg.Federated.Issuer,
			Secret: cfg.Federated.Secret,
		})
	gate := identity.NewGate(store)

	modelRepo := repositories.NewModelRepository(store, assetManager)
	applicationRepo := repositories.NewApplicationRepository(store)
	bookingRepo := repositories.NewBookingRepository(store)
	blogRepo := repositories.NewBlogRepository(store, assetManager)
	settingsRepo := repositories.NewSettingsRepository(store)
	websiteRepo := repositories.NewWebsiteRepository(store)
	profileRepo := repositories.NewProfileRepository(store, assetManager, provider)
	grantRepo := repositories.NewAdminGrantRepository(store)

	sender := email.NewSender(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})

	serviceContainer := services.NewServiceContainer(modelRepo, applicationRepo, bookingRepo, settingsRepo, sender)

	customValidator := validator.New()
	if engine, ok := binding.Validator.Engine().(*playgroundvalidator.Validate); ok {
		validator.RegisterRules(engine)
	}

	base := handlers.NewBaseHandler(customValidator)
	appHandlers := &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, provider),
		ModelHandler:       handlers.NewModelHandler(base, modelRepo),
		ApplicationHandler: handlers.NewApplicationHandler(base, applicationRepo, serviceContainer.Notifications),
		BookingHandler:     handlers.NewBookingHandler(base, bookingRepo, serviceContainer.Notifications),
		BlogHandler:        handlers.NewBlogHandler(base, blogRepo),
		SettingsHandler:    handlers.NewSettingsHandler(base, settingsRepo, websiteRepo),
		DashboardHandler:   handlers.NewDashboardHandler(base, serviceContainer.Stats),
		ProfileHandler:     handlers.NewProfileHandler(base, profileRepo),
		AdminHandler:       handlers.NewAdminHandler(base, grantRepo, cfg.Admin.SetupEnabled),
	}

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, tokens, gate, cfg.LoginPath)

	if cfg.Storage.Type == "local" {
		router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}
	return router
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin registers the configured admin account and its privilege
// grant so a fresh deployment has a working console. Both steps are
// idempotent: an existing account or grant is left untouched.
func seedFirstAdmin(ctx context.Context, cfg *config.Config, store docstore.Store) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin email or password not configured, skipping admin seeding")
		return nil
	}

	tokens := identity.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
	provider := identity.NewStoreProvider(store, tokens,
		time.Duration(cfg.JWT.RefreshTTL)*time.Hour, identity.FederatedConfig{})

	_, err := provider.Register(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.DisplayName)
	if err != nil && !apperrors.Is(err, apperrors.ErrEmailAlreadyExists) {
		return fmt.Errorf("failed to register admin account: %w", err)
	}
	if err == nil {
		logger.Info("Created first admin account", "email", cfg.Admin.Email)
	}

	grants := repositories.NewAdminGrantRepository(store)
	if _, err := grants.Grant(ctx, cfg.Admin.Email); err != nil {
		return fmt.Errorf("failed to grant admin privilege: %w", err)
	}
	return nil
}
