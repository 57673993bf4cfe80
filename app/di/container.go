package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"volunteer-hub/app/config"
	"volunteer-hub/app/driver/cache"
	"volunteer-hub/app/driver/hubapi"
	"volunteer-hub/app/driver/postgres"
	"volunteer-hub/app/gateway"
	"volunteer-hub/app/port"
	"volunteer-hub/app/rest"
	custommw "volunteer-hub/app/rest/middleware"
	"volunteer-hub/app/usecase"
	"volunteer-hub/app/utils/security"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB        *postgres.DB
	HubClient *hubapi.Client

	// Gateways
	HubGateway port.HubGateway

	// Usecases
	SessionUsecase   *usecase.SessionUsecase
	DirectoryUsecase port.DirectoryUsecase

	TokenIssuer port.TokenIssuer

	// Guard answers Pending until CompleteRestore opens the gate.
	Guard *custommw.GuardMiddleware
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.HubClient, err = hubapi.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize platform API client: %w", err)
	}

	container.TokenIssuer, err = security.NewTokenIssuer(security.TokenConfig{
		Secret:   cfg.TokenSecret,
		Issuer:   cfg.TokenIssuer,
		Audience: cfg.TokenAudience,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token issuer: %w", err)
	}

	// Repositories and caches
	sessionRepository := postgres.NewSessionRepository(container.DB.Pool(), logger)
	identityCache := cache.NewIdentityCache(cfg.SessionTTL)

	// Gateways
	container.HubGateway = gateway.NewHubGateway(container.HubClient, logger)

	// Usecases
	container.SessionUsecase = usecase.NewSessionUsecase(
		sessionRepository, identityCache, container.HubGateway, cfg.SessionTTL, logger)
	container.DirectoryUsecase = usecase.NewDirectoryUsecase(
		container.HubGateway, container.SessionUsecase, logger)

	// Guards hold Pending until CompleteRestore confirms the durable store
	// is serving, so a warming server never misreads a live session.
	container.Guard = custommw.NewGuardMiddleware(
		container.SessionUsecase, container.TokenIssuer, logger)
	container.Guard.SetRestoring(true)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:           c.Logger,
		SessionUsecase:   c.SessionUsecase,
		DirectoryUsecase: c.DirectoryUsecase,
		TokenIssuer:      c.TokenIssuer,
		Guard:            c.Guard,
		DB:               c.DB,
		HubAPI:           c.HubClient,
		EnableDebug:      c.Config.LogLevel == "debug",
		EnableMetrics:    c.Config.EnableMetrics,
	}

	return rest.NewRouter(routerConfig)
}

// CleanupExpiredSessions removes expired rows from the durable store.
func (c *Container) CleanupExpiredSessions(ctx context.Context) error {
	return c.SessionUsecase.CleanupExpired(ctx)
}

// CompleteRestore verifies the durable store answers, runs the initial
// expired-session sweep, and opens the guard gate. Until it returns, guarded
// routes reply 503 with Retry-After rather than deciding against a session
// the store has not surfaced yet.
func (c *Container) CompleteRestore(ctx context.Context) error {
	if err := c.DB.HealthCheck(ctx); err != nil {
		return fmt.Errorf("durable store not ready: %w", err)
	}
	if err := c.CleanupExpiredSessions(ctx); err != nil {
		return fmt.Errorf("initial session sweep failed: %w", err)
	}
	c.Guard.SetRestoring(false)
	c.Logger.Info("session store restored, guards deciding")
	return nil
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	c.Logger.Info("container resources released")
	return nil
}
