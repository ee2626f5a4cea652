package repository

import (
	"context"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// CustomerRepository defines customer data access, tenant-scoped
type CustomerRepository interface {
	// Create persists a new customer
	Create(ctx context.Context, customer *domain.Customer) error
	// GetByID retrieves a customer within the tenant, nil when absent
	GetByID(ctx context.Context, tenantID, id string) (*domain.Customer, error)
	// List retrieves customers, created_at descending
	List(ctx context.Context, tenantID string, includeDeleted bool) ([]*domain.Customer, error)
	// SoftDelete marks a customer deleted; their history is preserved
	SoftDelete(ctx context.Context, tenantID, id string) error
}
