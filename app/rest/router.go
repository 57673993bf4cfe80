package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"volunteer-hub/app/domain"
	"volunteer-hub/app/port"
	"volunteer-hub/app/rest/handlers"
	custommw "volunteer-hub/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger           *slog.Logger
	SessionUsecase   port.SessionUsecase
	DirectoryUsecase port.DirectoryUsecase
	TokenIssuer      port.TokenIssuer
	// Guard is shared with the owner of the restoring gate; when nil the
	// router builds its own, already open.
	Guard         *custommw.GuardMiddleware
	DB            handlers.DependencyChecker
	HubAPI        handlers.DependencyChecker
	EnableDebug   bool
	EnableMetrics bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Handlers
	authHandler := handlers.NewAuthHandler(config.SessionUsecase, config.TokenIssuer, config.Logger)
	directoryHandler := handlers.NewDirectoryHandler(config.DirectoryUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DB, config.HubAPI, config.Logger)

	// Middleware
	guard := config.Guard
	if guard == nil {
		guard = custommw.NewGuardMiddleware(config.SessionUsecase, config.TokenIssuer, config.Logger)
	}
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Public views guards redirect to.
	e.GET(domain.LoginPath, authHandler.LoginPage)
	e.GET(domain.UnauthorizedPath, authHandler.UnauthorizedPage)

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register/volunteer", authHandler.RegisterVolunteer)
	auth.POST("/register/organization", authHandler.RegisterOrganization)

	authProtected := auth.Group("")
	authProtected.Use(guard.RequireAuth())
	authProtected.POST("/logout", authHandler.Logout)
	authProtected.GET("/session", authHandler.Session)

	// Any authenticated identity.
	dashboard := v1.Group("/dashboard")
	dashboard.Use(guard.RequireAuth())
	dashboard.GET("", directoryHandler.Dashboard)

	categories := v1.Group("/categories")
	categories.Use(guard.RequireAuth())
	categories.GET("", directoryHandler.ListCategories)

	organizations := v1.Group("/organizations")
	organizations.Use(guard.RequireAuth())
	organizations.GET("/:mail", directoryHandler.GetOrganization)

	// Volunteer-side directory routes.
	volunteerRoutes := v1.Group("")
	volunteerRoutes.Use(guard.RequireRole(domain.RoleVolunteer))
	volunteerRoutes.GET("/opportunities", directoryHandler.ListOpportunities)
	volunteerRoutes.GET("/opportunities/:id", directoryHandler.GetOpportunity)
	volunteerRoutes.GET("/applications", directoryHandler.MyApplications)
	volunteerRoutes.POST("/applications", directoryHandler.Apply)

	// Organization-side project and review routes.
	orgRoutes := v1.Group("")
	orgRoutes.Use(guard.RequireRole(domain.RoleOrganizationAdmin))
	orgRoutes.GET("/projects", directoryHandler.MyOpportunities)
	orgRoutes.GET("/projects/:id/applications", directoryHandler.ReviewApplications)
	orgRoutes.PUT("/applications/:id", directoryHandler.DecideApplication)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}
