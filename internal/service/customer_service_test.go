package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

type customerServiceFixture struct {
	customers    *repository.MemoryCustomerRepository
	requests     *repository.MemoryRequestRepository
	appointments *repository.MemoryAppointmentRepository
	svc          CustomerService
}

func newCustomerServiceFixture() *customerServiceFixture {
	f := &customerServiceFixture{
		customers:    repository.NewMemoryCustomerRepository(),
		requests:     repository.NewMemoryRequestRepository(),
		appointments: repository.NewMemoryAppointmentRepository(),
	}
	f.svc = NewCustomerService(testTenantID, f.customers, f.requests, f.appointments, logger.NewNop())
	return f
}

func seedCustomer(t *testing.T, repo *repository.MemoryCustomerRepository, tenantID string) *domain.Customer {
	t.Helper()
	now := time.Now()
	customer := &domain.Customer{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      "Morgan",
		Phone:     "+15550002222",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), customer))
	return customer
}

func TestCustomerService_List(t *testing.T) {
	f := newCustomerServiceFixture()

	seedCustomer(t, f.customers, testTenantID)
	deleted := seedCustomer(t, f.customers, testTenantID)
	require.NoError(t, f.customers.SoftDelete(context.Background(), testTenantID, deleted.ID))
	seedCustomer(t, f.customers, otherTenantID)

	out, err := f.svc.List(context.Background(), adminPrincipal(), false)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = f.svc.List(context.Background(), adminPrincipal(), true)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = f.svc.List(context.Background(), artistPrincipal(), false)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCustomerService_GetDetail(t *testing.T) {
	f := newCustomerServiceFixture()
	customer := seedCustomer(t, f.customers, testTenantID)

	req := seedRequest(t, f.requests, testTenantID, domain.RequestStatusScheduled)
	req.CustomerID = customer.ID
	require.NoError(t, f.requests.Update(context.Background(), req))

	// Deleted history stays visible from the profile.
	deletedReq := seedRequest(t, f.requests, testTenantID, domain.RequestStatusDeclined)
	deletedReq.CustomerID = customer.ID
	require.NoError(t, f.requests.Update(context.Background(), deletedReq))
	require.NoError(t, f.requests.SoftDelete(context.Background(), testTenantID, deletedReq.ID))

	appt := seedAppointment(t, f.appointments, testArtistID, time.Now())
	appt.CustomerID = customer.ID
	require.NoError(t, f.appointments.Create(context.Background(), appt))

	detail, err := f.svc.GetDetail(context.Background(), adminPrincipal(), customer.ID)
	require.NoError(t, err)

	assert.Equal(t, customer.ID, detail.Customer.ID)
	assert.Len(t, detail.Requests, 2)
	assert.Len(t, detail.Appointments, 1)
}

func TestCustomerService_GetDetail_NotFound(t *testing.T) {
	f := newCustomerServiceFixture()

	_, err := f.svc.GetDetail(context.Background(), adminPrincipal(), "no-such-id")
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	foreign := seedCustomer(t, f.customers, otherTenantID)
	_, err = f.svc.GetDetail(context.Background(), adminPrincipal(), foreign.ID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerService_GetDetail_NonAdmin(t *testing.T) {
	f := newCustomerServiceFixture()
	customer := seedCustomer(t, f.customers, testTenantID)

	_, err := f.svc.GetDetail(context.Background(), artistPrincipal(), customer.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.GetDetail(context.Background(), auth.Anonymous(), customer.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}
