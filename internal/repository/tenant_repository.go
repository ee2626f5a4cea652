package repository

import (
	"context"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// TenantRepository defines tenant data access
type TenantRepository interface {
	// GetBySlug retrieves a tenant by slug, nil when absent
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	// GetByID retrieves a tenant by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
}
