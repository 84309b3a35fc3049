package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"beesides-api/app/config"
	"beesides-api/app/driver/appwrite"
	"beesides-api/app/gateway"
	"beesides-api/app/metrics"
	"beesides-api/app/port"
	"beesides-api/app/rest"
	"beesides-api/app/rest/handlers"
	"beesides-api/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	PlatformClient *appwrite.Client

	// Gateways
	AccountGateway  port.AccountGateway
	UserGateway     port.UserGateway
	DocumentGateway port.DocumentGateway
	ProfileGateway  port.ProfileGateway
	StorageGateway  port.StorageGateway

	// Usecases
	AuthUsecase       port.AuthUsecase
	DocumentUsecase   port.DocumentUsecase
	StorageUsecase    port.StorageUsecase
	OnboardingUsecase port.OnboardingUsecase

	// Observability
	Metrics *metrics.Collector
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.PlatformClient, err = appwrite.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize platform client: %w", err)
	}

	// Gateways
	container.AccountGateway = gateway.NewAccountGateway(container.PlatformClient, logger)
	container.UserGateway = gateway.NewUserGateway(container.PlatformClient, logger)
	container.DocumentGateway = gateway.NewDocumentGateway(container.PlatformClient, logger)
	container.ProfileGateway = gateway.NewProfileGateway(container.PlatformClient, cfg, logger)
	container.StorageGateway = gateway.NewStorageGateway(container.PlatformClient, logger)

	// Login lookup: query by email first, fall back to the full listing only
	// when the query itself fails.
	finder := usecase.NewFallbackUserFinder(
		usecase.NewQueryUserFinder(container.UserGateway),
		usecase.NewListUserFinder(container.UserGateway),
		logger,
	)

	// Usecases
	container.AuthUsecase = usecase.NewAuthUseCase(
		container.UserGateway,
		container.AccountGateway,
		container.ProfileGateway,
		finder,
		logger,
	)
	container.DocumentUsecase = usecase.NewDocumentUseCase(container.DocumentGateway, logger)
	container.StorageUsecase = usecase.NewStorageUseCase(container.StorageGateway, logger)
	container.OnboardingUsecase = usecase.NewOnboardingUseCase(container.ProfileGateway, logger)

	if cfg.EnableMetrics {
		container.Metrics = metrics.NewCollector()
	}

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:            c.Logger,
		AuthUsecase:       c.AuthUsecase,
		DocumentUsecase:   c.DocumentUsecase,
		StorageUsecase:    c.StorageUsecase,
		OnboardingUsecase: c.OnboardingUsecase,
		PlatformChecker:   c.platformChecker(),
		Metrics:           c.Metrics,
		EnableDebug:       c.Config.LogLevel == "debug",
		EnableMetrics:     c.Config.EnableMetrics,
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("API router created")
	return router
}

// platformChecker returns the readiness probe for the platform, recording
// each probe outcome when metrics are enabled.
func (c *Container) platformChecker() handlers.PlatformChecker {
	check := c.PlatformClient.HealthCheck
	if c.Metrics == nil {
		return check
	}
	return func(ctx context.Context) error {
		err := check(ctx)
		c.Metrics.RecordPlatformCall("health", err)
		return err
	}
}

// Close closes all resources
func (c *Container) Close() error {
	// The platform client holds no pooled resources beyond its HTTP client.
	c.Logger.Info("container closed")
	return nil
}
