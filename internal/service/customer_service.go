package service

import (
	"context"
	"errors"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

// ErrCustomerNotFound is returned for absent or cross-tenant customers
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerService serves the admin customer directory
type CustomerService interface {
	// List retrieves customers, newest first (admin only)
	List(ctx context.Context, principal auth.Principal, includeDeleted bool) ([]*domain.Customer, error)
	// GetDetail retrieves a customer with their full request and
	// appointment history, soft-deleted rows included (admin only)
	GetDetail(ctx context.Context, principal auth.Principal, id string) (*domain.CustomerDetail, error)
}

// customerService implements CustomerService
type customerService struct {
	tenantID     string
	customers    repository.CustomerRepository
	requests     repository.RequestRepository
	appointments repository.AppointmentRepository
	log          *logger.Logger
}

// NewCustomerService creates a CustomerService scoped to the resolved tenant
func NewCustomerService(
	tenantID string,
	customers repository.CustomerRepository,
	requests repository.RequestRepository,
	appointments repository.AppointmentRepository,
	log *logger.Logger,
) CustomerService {
	return &customerService{
		tenantID:     tenantID,
		customers:    customers,
		requests:     requests,
		appointments: appointments,
		log:          log,
	}
}

// List retrieves customers visible to the principal
func (s *customerService) List(ctx context.Context, principal auth.Principal, includeDeleted bool) ([]*domain.Customer, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.customers.List(ctx, s.tenantID, includeDeleted)
}

// GetDetail assembles a customer's profile and history. History includes
// soft-deleted records so past work stays visible from the profile.
func (s *customerService) GetDetail(ctx context.Context, principal auth.Principal, id string) (*domain.CustomerDetail, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}

	customer, err := s.customers.GetByID(ctx, s.tenantID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	requests, err := s.requests.List(ctx, s.tenantID, repository.RequestListFilter{
		CustomerID:     id,
		IncludeDeleted: true,
	})
	if err != nil {
		return nil, err
	}

	appointments, err := s.appointments.List(ctx, s.tenantID, repository.AppointmentListFilter{
		CustomerID:     id,
		IncludeDeleted: true,
	})
	if err != nil {
		return nil, err
	}

	return &domain.CustomerDetail{
		Customer:     customer,
		Requests:     requests,
		Appointments: appointments,
	}, nil
}
