package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portal-service/app/port"
	"portal-service/app/rest/handlers"
	custommw "portal-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger *slog.Logger

	Sessions      port.SessionUsecase
	Roles         port.RoleUsecase
	Organizations port.OrganizationUsecase
	Access        port.AccessUsecase
	Security      port.SecurityUsecase
	Contact       port.ContactUsecase

	OrganizationRepo port.OrganizationRepositoryPort

	DatabasePinger handlers.Pinger
	KratosPinger   handlers.Pinger

	EnableDebug   bool
	EnableMetrics bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Handlers
	sessionHandler := handlers.NewSessionHandler(config.Sessions, config.Security, config.Roles, config.Access, config.Logger)
	portalHandler := handlers.NewPortalHandler(config.Roles, config.Organizations, config.Access, config.Logger)
	adminHandler := handlers.NewAdminHandler(config.Security, config.OrganizationRepo, config.Access, config.Logger)
	contactHandler := handlers.NewContactHandler(config.Contact, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DatabasePinger, config.KratosPinger, config.Logger)

	// Middleware
	guards := custommw.NewGuardMiddleware(config.Sessions, config.Roles, config.Access, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/sign-in", sessionHandler.SignIn)
	auth.POST("/verify-code", sessionHandler.VerifyCode)

	authProtected := auth.Group("")
	authProtected.Use(guards.RequireAuth())
	authProtected.POST("/sign-out", sessionHandler.SignOut)
	authProtected.GET("/whoami", sessionHandler.WhoAmI)

	// Public contact intake; a resolved session is attached when present
	v1.POST("/contact", contactHandler.Submit, guards.OptionalAuth())

	// Signed-in portal surface
	portal := v1.Group("/portal")
	portal.Use(guards.RequireAuth())
	portal.GET("/me", portalHandler.Me)
	portal.POST("/me/refresh", portalHandler.RefreshContext)
	portal.POST("/data-access", portalHandler.ValidateDataAccess)
	portal.GET("/organizations/:orgId/access", portalHandler.CheckOrganizationAccess)
	portal.GET("/organizations/:orgId/name", portalHandler.OrganizationName, guards.RequireOrganizationAccess("orgId"))

	// Administrative surface
	admin := v1.Group("/admin")
	admin.Use(guards.RequireAuth())
	admin.Use(guards.RequireAdmin())
	admin.GET("/lockouts/:email", adminHandler.GetLockoutStatus)
	admin.POST("/lockouts/:email/unlock", adminHandler.UnlockAccount)
	admin.GET("/organizations", adminHandler.ListOrganizations)
	admin.DELETE("/permissions/cache", adminHandler.ClearPermissionCache)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}
