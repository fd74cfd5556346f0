package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentecare-backend/config"
	deliveryHttp "mentecare-backend/internal/delivery/http"
	"mentecare-backend/internal/delivery/http/handler"
	"mentecare-backend/internal/delivery/http/middleware"
	"mentecare-backend/internal/infrastructure/cache"
	"mentecare-backend/internal/infrastructure/database"
	"mentecare-backend/internal/infrastructure/logger"
	"mentecare-backend/internal/repository"
	"mentecare-backend/internal/service"
	"mentecare-backend/internal/usecase"
	"mentecare-backend/pkg/jwt"
	"mentecare-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	app.Config = cfg

	app.Log = logger.Setup(cfg.App)
	app.Log.WithFields(logrus.Fields{"app": cfg.App.Name, "env": cfg.App.Env}).Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, app.Log, db, redisClient)

	return app, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	professionalRepo := repository.NewProfessionalRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	tokenRepo := repository.NewTokenRepository(redisClient)

	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, professionalRepo, tokenRepo, auditService, jwtService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, professionalRepo, tokenRepo, auditService)
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, professionalRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Handlers
	errorResponder := handler.NewErrorResponder(log, cfg.App.IsDevelopment())
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, errorResponder)
	userHandler := handler.NewUserHandler(userUsecase, auditLogUsecase, customValidator, errorResponder)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, customValidator, errorResponder)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, jwtService, tokenRepo)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)
	searchRateLimit := middleware.RateLimit(log, middleware.NewRedisRateCounter(redisClient), "search", cfg.RateLimit.Requests, cfg.RateLimit.Window)

	router := deliveryHttp.NewRouter(log, authHandler, userHandler, professionalHandler, authMiddleware, corsMiddleware, searchRateLimit)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
