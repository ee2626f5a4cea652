package di

import (
	"github.com/redis/go-redis/v9"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/database"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/events"
	"github.com/bigrusstattoo/studio/internal/handler"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
	"github.com/bigrusstattoo/studio/internal/service"
)

// Container holds all dependencies for the studio service
type Container struct {
	// Infrastructure
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher *events.Publisher
	Tokens    *auth.TokenManager

	// Repositories
	TenantRepo       repository.TenantRepository
	RequestRepo      repository.RequestRepository
	AppointmentRepo  repository.AppointmentRepository
	AvailabilityRepo repository.AvailabilityRepository
	CustomerRepo     repository.CustomerRepository
	UserRepo         repository.UserRepository
	CredentialRepo   repository.CredentialRepository
	FileRepo         repository.FileRepository
	PaymentRepo      repository.PaymentRepository

	// Services
	NotifyService      service.NotifyService
	RequestService     service.RequestService
	AppointmentService service.AppointmentService
	CustomerService    service.CustomerService
	UserService        service.UserService
	FileService        service.FileService
	PaymentService     service.PaymentService
	AuthService        service.AuthService

	// Handlers
	Handlers *handler.Handlers
}

// ContainerConfig contains everything needed to build the container
type ContainerConfig struct {
	Config    *config.Config
	Tenant    *domain.Tenant
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher *events.Publisher
	Log       *logger.Logger
	Version   string
}

// NewContainer wires repositories, services, and handlers for the
// resolved tenant.
func NewContainer(cfg *ContainerConfig) (*Container, error) {
	c := &Container{
		DB:        cfg.DB,
		Redis:     cfg.Redis,
		Publisher: cfg.Publisher,
	}

	pool := cfg.DB.Pool
	c.TenantRepo = repository.NewPostgresTenantRepository(pool)
	c.RequestRepo = repository.NewPostgresRequestRepository(pool)
	c.AppointmentRepo = repository.NewPostgresAppointmentRepository(pool)
	c.AvailabilityRepo = repository.NewPostgresAvailabilityRepository(pool)
	c.CustomerRepo = repository.NewPostgresCustomerRepository(pool)
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.CredentialRepo = repository.NewPostgresCredentialRepository(pool)
	c.FileRepo = repository.NewPostgresFileRepository(pool)
	c.PaymentRepo = repository.NewPostgresPaymentRepository(pool)

	tenantID := cfg.Tenant.ID
	c.Tokens = auth.NewTokenManager(&cfg.Config.Auth)

	c.NotifyService = service.NewNotifyService(&cfg.Config.Twilio, cfg.Log)
	c.RequestService = service.NewRequestService(tenantID, c.RequestRepo, c.NotifyService, cfg.Publisher, cfg.Log)
	c.AppointmentService = service.NewAppointmentService(tenantID, c.AppointmentRepo, c.AvailabilityRepo, cfg.Log)
	c.CustomerService = service.NewCustomerService(tenantID, c.CustomerRepo, c.RequestRepo, c.AppointmentRepo, cfg.Log)
	c.UserService = service.NewUserService(tenantID, c.UserRepo, cfg.Log)
	c.FileService = service.NewFileService(tenantID, c.FileRepo, cfg.Log)
	c.PaymentService = service.NewPaymentService(tenantID, &cfg.Config.Stripe, c.PaymentRepo, cfg.Log)

	wa, err := auth.NewWebAuthn(&cfg.Config.Passkey)
	if err != nil {
		return nil, err
	}
	challenges := auth.NewChallengeStore(cfg.Redis, cfg.Config.Passkey.ChallengeTTL)
	issuer := auth.NewPasskeyTokenIssuer(cfg.Config.PasskeyTokenSecret())
	c.AuthService = service.NewAuthService(cfg.Tenant, wa, challenges, issuer, c.Tokens,
		c.UserRepo, c.CredentialRepo, cfg.Log)

	c.Handlers = &handler.Handlers{
		Health:      handler.NewHealthHandler(cfg.DB, cfg.Version),
		Auth:        handler.NewAuthHandler(c.AuthService),
		Request:     handler.NewRequestHandler(c.RequestService),
		Appointment: handler.NewAppointmentHandler(c.AppointmentService),
		Customer:    handler.NewCustomerHandler(c.CustomerService),
		User:        handler.NewUserHandler(c.UserService),
		File:        handler.NewFileHandler(c.FileService),
		Contact:     handler.NewContactHandler(c.NotifyService),
		Payment:     handler.NewPaymentHandler(c.PaymentService),
	}

	return c, nil
}
