package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// In-memory repository implementations backing tests. Each mirrors the
// tenant-scoping and soft-delete semantics of its Postgres counterpart.

// MemoryTenantRepository is an in-memory TenantRepository
type MemoryTenantRepository struct {
	mu      sync.RWMutex
	tenants map[string]*domain.Tenant
}

// NewMemoryTenantRepository creates an empty in-memory tenant store
func NewMemoryTenantRepository() *MemoryTenantRepository {
	return &MemoryTenantRepository{tenants: make(map[string]*domain.Tenant)}
}

// Put seeds a tenant
func (s *MemoryTenantRepository) Put(tenant *domain.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants[tenant.ID] = tenant
}

// GetBySlug retrieves a tenant by slug
func (s *MemoryTenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tenants {
		if t.Slug == slug && t.DeletedAt == nil {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a tenant by ID
func (s *MemoryTenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tenants[id]; ok && t.DeletedAt == nil {
		copied := *t
		return &copied, nil
	}
	return nil, nil
}

// MemoryRequestRepository is an in-memory RequestRepository
type MemoryRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.AppointmentRequest
}

// NewMemoryRequestRepository creates an empty in-memory request store
func NewMemoryRequestRepository() *MemoryRequestRepository {
	return &MemoryRequestRepository{requests: make(map[string]*domain.AppointmentRequest)}
}

// Create persists a new intake record
func (s *MemoryRequestRepository) Create(ctx context.Context, req *domain.AppointmentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[req.ID]; exists {
		return fmt.Errorf("request %s already exists", req.ID)
	}
	copied := *req
	s.requests[req.ID] = &copied
	return nil
}

// GetByID retrieves a request within the tenant
func (s *MemoryRequestRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.AppointmentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[id]
	if !ok || req.TenantID != tenantID || req.DeletedAt != nil {
		return nil, nil
	}
	copied := *req
	return &copied, nil
}

// List retrieves requests matching the filter, newest first
func (s *MemoryRequestRepository) List(ctx context.Context, tenantID string, filter RequestListFilter) ([]*domain.AppointmentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.AppointmentRequest, 0)
	for _, req := range s.requests {
		if req.TenantID != tenantID {
			continue
		}
		if !filter.IncludeDeleted && req.DeletedAt != nil {
			continue
		}
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		if filter.ArtistID != "" && req.ArtistID != filter.ArtistID {
			continue
		}
		if filter.CustomerID != "" && req.CustomerID != filter.CustomerID {
			continue
		}
		copied := *req
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update persists status and contact timestamps
func (s *MemoryRequestRepository) Update(ctx context.Context, req *domain.AppointmentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.requests[req.ID]
	if !ok || existing.TenantID != req.TenantID || existing.DeletedAt != nil {
		return fmt.Errorf("request not found or already deleted")
	}
	req.UpdatedAt = time.Now()
	copied := *req
	s.requests[req.ID] = &copied
	return nil
}

// BulkUpdateStatus applies a status to every matching id within the tenant
func (s *MemoryRequestRepository) BulkUpdateStatus(ctx context.Context, tenantID string, ids []string, status domain.RequestStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated int64
	now := time.Now()
	for _, id := range ids {
		req, ok := s.requests[id]
		if !ok || req.TenantID != tenantID || req.DeletedAt != nil {
			continue
		}
		req.Status = status
		req.UpdatedAt = now
		updated++
	}
	return updated, nil
}

// SoftDelete marks a request deleted
func (s *MemoryRequestRepository) SoftDelete(ctx context.Context, tenantID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok || req.TenantID != tenantID || req.DeletedAt != nil {
		return fmt.Errorf("request not found or already deleted")
	}
	now := time.Now()
	req.DeletedAt = &now
	return nil
}

// MemoryAppointmentRepository is an in-memory AppointmentRepository
type MemoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[string]*domain.Appointment
}

// NewMemoryAppointmentRepository creates an empty in-memory appointment store
func NewMemoryAppointmentRepository() *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{appointments: make(map[string]*domain.Appointment)}
}

// Create persists a new appointment
func (s *MemoryAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *appt
	s.appointments[appt.ID] = &copied
	return nil
}

// GetByID retrieves an appointment within the tenant
func (s *MemoryAppointmentRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	appt, ok := s.appointments[id]
	if !ok || appt.TenantID != tenantID || appt.DeletedAt != nil {
		return nil, nil
	}
	copied := *appt
	return &copied, nil
}

// List retrieves appointments matching the filter, start_time descending
func (s *MemoryAppointmentRepository) List(ctx context.Context, tenantID string, filter AppointmentListFilter) ([]*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Appointment, 0)
	for _, appt := range s.appointments {
		if appt.TenantID != tenantID {
			continue
		}
		if !filter.IncludeDeleted && appt.DeletedAt != nil {
			continue
		}
		if filter.ArtistID != "" && appt.ArtistID != filter.ArtistID {
			continue
		}
		if filter.CustomerID != "" && appt.CustomerID != filter.CustomerID {
			continue
		}
		copied := *appt
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

// SoftDelete marks an appointment deleted
func (s *MemoryAppointmentRepository) SoftDelete(ctx context.Context, tenantID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	appt, ok := s.appointments[id]
	if !ok || appt.TenantID != tenantID || appt.DeletedAt != nil {
		return fmt.Errorf("appointment not found or already deleted")
	}
	now := time.Now()
	appt.DeletedAt = &now
	return nil
}

// MemoryAvailabilityRepository is an in-memory AvailabilityRepository
type MemoryAvailabilityRepository struct {
	mu     sync.RWMutex
	blocks map[string]*domain.AvailabilityBlock
}

// NewMemoryAvailabilityRepository creates an empty in-memory block store
func NewMemoryAvailabilityRepository() *MemoryAvailabilityRepository {
	return &MemoryAvailabilityRepository{blocks: make(map[string]*domain.AvailabilityBlock)}
}

// Create persists a new availability block
func (s *MemoryAvailabilityRepository) Create(ctx context.Context, block *domain.AvailabilityBlock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *block
	s.blocks[block.ID] = &copied
	return nil
}

// GetByID retrieves a block within the tenant
func (s *MemoryAvailabilityRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.AvailabilityBlock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	block, ok := s.blocks[id]
	if !ok || block.TenantID != tenantID || block.DeletedAt != nil {
		return nil, nil
	}
	copied := *block
	return &copied, nil
}

// SoftDelete marks a block deleted
func (s *MemoryAvailabilityRepository) SoftDelete(ctx context.Context, tenantID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	block, ok := s.blocks[id]
	if !ok || block.TenantID != tenantID || block.DeletedAt != nil {
		return fmt.Errorf("availability block not found or already deleted")
	}
	now := time.Now()
	block.DeletedAt = &now
	return nil
}

// MemoryCustomerRepository is an in-memory CustomerRepository
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

// NewMemoryCustomerRepository creates an empty in-memory customer store
func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{customers: make(map[string]*domain.Customer)}
}

// Create persists a new customer
func (s *MemoryCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *customer
	s.customers[customer.ID] = &copied
	return nil
}

// GetByID retrieves a customer within the tenant
func (s *MemoryCustomerRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	customer, ok := s.customers[id]
	if !ok || customer.TenantID != tenantID || customer.DeletedAt != nil {
		return nil, nil
	}
	copied := *customer
	return &copied, nil
}

// List retrieves customers, newest first
func (s *MemoryCustomerRepository) List(ctx context.Context, tenantID string, includeDeleted bool) ([]*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Customer, 0)
	for _, customer := range s.customers {
		if customer.TenantID != tenantID {
			continue
		}
		if !includeDeleted && customer.DeletedAt != nil {
			continue
		}
		copied := *customer
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// SoftDelete marks a customer deleted
func (s *MemoryCustomerRepository) SoftDelete(ctx context.Context, tenantID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, ok := s.customers[id]
	if !ok || customer.TenantID != tenantID || customer.DeletedAt != nil {
		return fmt.Errorf("customer not found or already deleted")
	}
	now := time.Now()
	customer.DeletedAt = &now
	return nil
}

// MemoryUserRepository is an in-memory UserRepository
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	roles map[string][]string // userID -> role names
}

// NewMemoryUserRepository creates an empty in-memory user store
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]*domain.User),
		roles: make(map[string][]string),
	}
}

// Put seeds a user with role names
func (s *MemoryUserRepository) Put(user *domain.User, roleNames ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.users[user.ID] = &copied
	s.roles[user.ID] = roleNames
}

// GetByID retrieves a user within the tenant
func (s *MemoryUserRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok || user.TenantID != tenantID || user.DeletedAt != nil {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

// GetByEmail retrieves a user by email within the tenant
func (s *MemoryUserRepository) GetByEmail(ctx context.Context, tenantID, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.TenantID == tenantID && strings.EqualFold(user.Email, email) && user.DeletedAt == nil {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

// List retrieves users, optionally filtered by role name (case-insensitive)
func (s *MemoryUserRepository) List(ctx context.Context, tenantID, roleName string) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.User, 0)
	for _, user := range s.users {
		if user.TenantID != tenantID || user.DeletedAt != nil {
			continue
		}
		if roleName != "" {
			matched := false
			for _, name := range s.roles[user.ID] {
				if strings.EqualFold(name, roleName) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		copied := *user
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// RolesOf returns the role names assigned to a user
func (s *MemoryUserRepository) RolesOf(ctx context.Context, tenantID, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok || user.TenantID != tenantID {
		return nil, nil
	}
	return append([]string(nil), s.roles[userID]...), nil
}

// MemoryFileRepository is an in-memory FileRepository
type MemoryFileRepository struct {
	mu    sync.RWMutex
	files map[string]*domain.File
}

// NewMemoryFileRepository creates an empty in-memory file store
func NewMemoryFileRepository() *MemoryFileRepository {
	return &MemoryFileRepository{files: make(map[string]*domain.File)}
}

// Create persists a new file record
func (s *MemoryFileRepository) Create(ctx context.Context, file *domain.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *file
	s.files[file.ID] = &copied
	return nil
}

// List retrieves files matching the filter, newest first
func (s *MemoryFileRepository) List(ctx context.Context, tenantID string, filter FileListFilter) ([]*domain.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.File, 0)
	for _, file := range s.files {
		if file.TenantID != tenantID {
			continue
		}
		if !filter.IncludeDeleted && file.DeletedAt != nil {
			continue
		}
		if filter.Association != nil && file.Association != *filter.Association {
			continue
		}
		copied := *file
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// MemoryPaymentRepository is an in-memory PaymentRepository
type MemoryPaymentRepository struct {
	mu      sync.RWMutex
	intents map[string]*domain.PaymentIntent
}

// NewMemoryPaymentRepository creates an empty in-memory payment store
func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{intents: make(map[string]*domain.PaymentIntent)}
}

// Create persists a new pending payment intent
func (s *MemoryPaymentRepository) Create(ctx context.Context, intent *domain.PaymentIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *intent
	s.intents[intent.ID] = &copied
	return nil
}

// GetByProviderRef retrieves an intent by provider reference
func (s *MemoryPaymentRepository) GetByProviderRef(ctx context.Context, providerRef string) (*domain.PaymentIntent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, intent := range s.intents {
		if intent.ProviderRef == providerRef {
			copied := *intent
			return &copied, nil
		}
	}
	return nil, nil
}

// UpdateStatusByProviderRef sets the status of matching intents
func (s *MemoryPaymentRepository) UpdateStatusByProviderRef(ctx context.Context, providerRef string, status domain.PaymentStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated int64
	now := time.Now()
	for _, intent := range s.intents {
		if intent.ProviderRef == providerRef {
			intent.Status = status
			intent.UpdatedAt = now
			updated++
		}
	}
	return updated, nil
}

// MemoryCredentialRepository is an in-memory CredentialRepository
type MemoryCredentialRepository struct {
	mu    sync.RWMutex
	creds map[string][]*domain.PasskeyCredential // userID -> credentials
}

// NewMemoryCredentialRepository creates an empty in-memory credential store
func NewMemoryCredentialRepository() *MemoryCredentialRepository {
	return &MemoryCredentialRepository{creds: make(map[string][]*domain.PasskeyCredential)}
}

// Create persists a new passkey credential
func (s *MemoryCredentialRepository) Create(ctx context.Context, cred *domain.PasskeyCredential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *cred
	s.creds[cred.UserID] = append(s.creds[cred.UserID], &copied)
	return nil
}

// ListByUser retrieves all credentials registered by a user
func (s *MemoryCredentialRepository) ListByUser(ctx context.Context, tenantID, userID string) ([]*domain.PasskeyCredential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.PasskeyCredential, 0)
	for _, cred := range s.creds[userID] {
		if cred.TenantID == tenantID {
			copied := *cred
			out = append(out, &copied)
		}
	}
	return out, nil
}
