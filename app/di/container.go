package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"portal-service/app/config"
	"portal-service/app/driver/edgefn"
	"portal-service/app/driver/kratos"
	"portal-service/app/driver/postgres"
	"portal-service/app/gateway"
	"portal-service/app/port"
	"portal-service/app/rest"
	"portal-service/app/rest/handlers"
	"portal-service/app/usecase"
	"portal-service/app/utils/validator"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	SessionGateway port.SessionGateway

	// Usecases
	Sessions      *usecase.SessionUseCase
	Roles         *usecase.RoleUseCase
	Organizations *usecase.OrganizationUseCase
	Access        *usecase.AccessUseCase
	Security      *usecase.SecurityUseCase
	Contact       *usecase.ContactUseCase

	// Repositories reachable from the router
	OrganizationRepo port.OrganizationRepositoryPort
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Drivers
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Repositories
	pool := container.DB.Pool()
	roleRepo := postgres.NewRoleRepository(pool, logger)
	orgRepo := postgres.NewOrganizationRepository(pool, logger)
	authzRepo := postgres.NewAuthzRepository(pool, logger)
	securityRepo := postgres.NewSecurityRepository(pool, logger)
	contactRepo := postgres.NewContactRepository(pool, logger)
	container.OrganizationRepo = orgRepo

	// Gateways
	sessionAdapter := kratos.NewSessionAdapter(container.KratosClient, logger)
	container.SessionGateway = gateway.NewSessionGateway(sessionAdapter, logger)

	// Usecases
	container.Sessions = usecase.NewSessionUseCase(container.SessionGateway, logger)
	container.Roles = usecase.NewRoleUseCase(roleRepo, logger)
	container.Organizations = usecase.NewOrganizationUseCase(orgRepo, container.Roles, cfg.GuestOrganizationID, logger)
	container.Access = usecase.NewAccessUseCase(authzRepo, container.Roles, logger)
	container.Security = usecase.NewSecurityUseCase(securityRepo, logger)
	container.Contact = usecase.NewContactUseCase(contactRepo, edgefn.NewNotifier(cfg, logger), validator.New(), logger)

	// A fresh sign-in drops whatever was derived for that user before the
	// credentials changed. The access cache additionally invalidates
	// per-user entries on role snapshot changes through its own
	// subscription; sign-out teardown happens in the session handler.
	container.Sessions.Subscribe(func() {
		if session := container.Sessions.Current(); session != nil {
			container.Access.InvalidateUser(session.UserID)
		}
	})

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:           c.Logger,
		Sessions:         c.Sessions,
		Roles:            c.Roles,
		Organizations:    c.Organizations,
		Access:           c.Access,
		Security:         c.Security,
		Contact:          c.Contact,
		OrganizationRepo: c.OrganizationRepo,
		DatabasePinger:   handlers.PingerFunc(c.DB.HealthCheck),
		KratosPinger:     handlers.PingerFunc(c.KratosClient.HealthCheck),
		EnableDebug:      c.Config.LogLevel == "debug",
		EnableMetrics:    c.Config.EnableMetrics,
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	// The Kratos client needs no explicit cleanup

	c.Logger.Info("container closed")
	return nil
}
