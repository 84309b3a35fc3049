package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"beesides-api/app/metrics"
	"beesides-api/app/port"
	"beesides-api/app/rest/handlers"
	custommw "beesides-api/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger            *slog.Logger
	AuthUsecase       port.AuthUsecase
	DocumentUsecase   port.DocumentUsecase
	StorageUsecase    port.StorageUsecase
	OnboardingUsecase port.OnboardingUsecase
	PlatformChecker   handlers.PlatformChecker
	Metrics           *metrics.Collector
	EnableDebug       bool
	EnableMetrics     bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.HTTPErrorHandler = errorHandler(config.Logger)

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	dataHandler := handlers.NewDataHandler(config.DocumentUsecase, config.Logger)
	storageHandler := handlers.NewStorageHandler(config.StorageUsecase, config.Logger)
	onboardingHandler := handlers.NewOnboardingHandler(config.OnboardingUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.PlatformChecker, config.Logger)
	metaHandler := handlers.NewMetaHandler()

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	if config.EnableMetrics && config.Metrics != nil {
		e.Use(config.Metrics.Middleware())
	}

	// Meta routes
	e.GET("/", metaHandler.Banner)
	e.GET("/api/docs", metaHandler.Docs)

	// Health endpoints (no auth required)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/health/ready", healthHandler.ReadinessCheck)
	e.GET("/health/live", healthHandler.LivenessCheck)

	// Public auth endpoints
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/user", authHandler.CurrentUser)
	auth.POST("/logout", authHandler.Logout)

	// Protected document passthrough
	data := e.Group("/api/data")
	data.Use(authMiddleware.RequireAuth())
	data.GET("/:databaseId/:collectionId", dataHandler.ListDocuments)
	data.GET("/:databaseId/:collectionId/:documentId", dataHandler.GetDocument)
	data.POST("/:databaseId/:collectionId", dataHandler.CreateDocument)
	data.PATCH("/:databaseId/:collectionId/:documentId", dataHandler.UpdateDocument)
	data.DELETE("/:databaseId/:collectionId/:documentId", dataHandler.DeleteDocument)

	// Protected storage passthrough
	storage := e.Group("/api/storage")
	storage.Use(authMiddleware.RequireAuth())
	storage.POST("/upload/:bucketId", storageHandler.PrepareUpload)
	storage.GET("/:bucketId", storageHandler.ListFiles)
	storage.GET("/:bucketId/:fileId", storageHandler.GetFile)
	storage.DELETE("/:bucketId/:fileId", storageHandler.DeleteFile)

	// Protected onboarding state
	onboarding := e.Group("/api/onboarding")
	onboarding.Use(authMiddleware.RequireAuth())
	onboarding.GET("/progress", onboardingHandler.GetProgress)
	onboarding.POST("/step", onboardingHandler.SetStep)
	onboarding.POST("/complete", onboardingHandler.Complete)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics && config.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(config.Metrics.Handler()))
	}

	return e
}

// errorHandler renders unmatched routes and uncaught errors with the same
// JSON envelope the handlers use.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
			if status == http.StatusNotFound {
				message = "Route not found"
			}
		} else {
			logger.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
		}

		if writeErr := c.JSON(status, handlers.ErrorResponse{Message: message}); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
