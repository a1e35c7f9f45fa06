package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"arportal/internal/auth"
	"arportal/internal/config"
	"arportal/internal/database"
	"arportal/internal/email"
	"arportal/internal/handlers"
	"arportal/internal/logger"
	"arportal/internal/middleware"
	"arportal/internal/repositories"
	"arportal/internal/routes"
	"arportal/internal/services"
	"arportal/internal/storage"
	"arportal/internal/validator"
	"arportal/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the whole application: config, database, services, HTTP server
// and the certificate worker. Blocks until SIGINT/SIGTERM, then shuts both
// down.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	logger.Info("database connected")

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", "error", err)
	}

	if cfg.Seed.Enabled {
		if err := database.Seed(db, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
			logger.Fatal("failed to seed database", "error", err)
		}
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.AccessTTL())
	container, err := buildServices(cfg, tokens)
	if err != nil {
		logger.Fatal("failed to build services", "error", err)
	}

	router := SetupRouter(cfg, db, tokens, container)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := workers.NewCertificateWorker(
		db,
		repositories.NewCertificateRepository(),
		container.EmailProvider,
		cfg.ExpiryLookAhead(),
		cfg.SweepInterval(),
		cfg.Alerts.Recipient,
	)
	worker.Start(ctx)
	logger.Info("certificate worker started", "interval", cfg.SweepInterval())

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "addr", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
}

// SetupRouter assembles the gin engine with the full middleware chain and
// route table. Exposed separately so tests can drive the router directly.
func SetupRouter(cfg *config.Config, db *gorm.DB, tokens *auth.TokenManager, container *services.ServiceContainer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigin))
	router.Use(middleware.DBMiddleware(db))

	appHandlers := handlers.NewAppHandlers(container, validator.New())
	routes.RegisterRoutes(router, appHandlers, tokens)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func buildServices(cfg *config.Config, tokens *auth.TokenManager) (*services.ServiceContainer, error) {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		Bucket:    cfg.Storage.Bucket,
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("storage initialized", "type", cfg.Storage.Type)

	renderer, err := email.NewTemplateManager()
	if err != nil {
		return nil, err
	}
	mailer := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	}, renderer)

	return services.NewServiceContainer(services.ContainerConfig{
		Tokens:          tokens,
		RefreshTTL:      cfg.RefreshTTL(),
		ExpiryLookAhead: cfg.ExpiryLookAhead(),
		Storage:         store,
		EmailProvider:   mailer,
	}), nil
}
