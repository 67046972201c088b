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

	"healthhub-directory/config"
	deliveryHttp "healthhub-directory/internal/delivery/http"
	"healthhub-directory/internal/delivery/http/handler"
	"healthhub-directory/internal/delivery/http/middleware"
	"healthhub-directory/internal/domain/repository"
	"healthhub-directory/internal/infrastructure/cache"
	"healthhub-directory/internal/infrastructure/feed"
	repositoryImpl "healthhub-directory/internal/repository"
	"healthhub-directory/internal/service"
	"healthhub-directory/internal/usecase"
	"healthhub-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Loader      *service.DirectoryLoader
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger(logrus.InfoLevel)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	customValidator := validator.NewValidator()
	if err := customValidator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %v", customValidator.FormatValidationErrors(err))
	}
	app.Config = cfg

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.Info("Configuration loaded successfully")

	// Session store
	var sessionRepo repository.SessionRepository
	switch cfg.Session.Store {
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		sessionRepo = repositoryImpl.NewRedisSessionRepository(redisClient)
		logrus.Info("Redis session store ready")
	default:
		sessionRepo = repositoryImpl.NewMemorySessionRepository()
		logrus.Info("In-memory session store ready")
	}

	// Initialize all layers
	app.Loader, app.Server = initializeServer(cfg, customValidator, sessionRepo)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level logrus.Level) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
}

// initializeServer creates the directory loader and the HTTP server around it
func initializeServer(cfg *config.Config, customValidator *validator.CustomValidator, sessionRepo repository.SessionRepository) (*service.DirectoryLoader, *http.Server) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	doctorRepo := repositoryImpl.NewDoctorRepository()

	// Initialize the feed and the one-shot loader
	feedClient := feed.NewHTTPClient(cfg.Directory.SourceURL, feed.WithTimeout(cfg.Directory.FetchTimeout))
	loader := service.NewDirectoryLoader(feedClient, doctorRepo, log)

	// Initialize usecases
	directoryUsecase := usecase.NewDirectoryUsecase(log, doctorRepo, loader, cfg.Directory.PlaceholderURL)
	sessionUsecase := usecase.NewSessionUsecase(log, sessionRepo, doctorRepo, loader, cfg.Session.TTL, cfg.Directory.PlaceholderURL)

	// Initialize handlers
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase, customValidator)
	sessionHandler := handler.NewSessionHandler(sessionUsecase, customValidator)
	pageHandler := handler.NewPageHandler(directoryUsecase, customValidator, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	suggestLimiter := middleware.NewRateLimitMiddleware(cfg.Suggest.RateLimit, cfg.Suggest.Burst)

	// Initialize router
	router := deliveryHttp.NewRouter(directoryHandler, sessionHandler, pageHandler, corsMiddleware, loggingMiddleware, suggestLimiter)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return loader, &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the directory fetch and the HTTP server side by side and blocks until
// an interrupt signal or a server failure.
func (app *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Loader.Load(ctx)
		return nil
	})

	g.Go(func() error {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		app.shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}

// shutdown stops the HTTP server gracefully and releases connections
func (app *App) shutdown() {
	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the Redis connection when the Redis session store is in use
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
