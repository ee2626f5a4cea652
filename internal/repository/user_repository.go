package repository

import (
	"context"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// UserRepository defines staff user and role data access, tenant-scoped
type UserRepository interface {
	// GetByID retrieves a user within the tenant, nil when absent
	GetByID(ctx context.Context, tenantID, id string) (*domain.User, error)
	// GetByEmail retrieves a user by email within the tenant, nil when absent
	GetByEmail(ctx context.Context, tenantID, email string) (*domain.User, error)
	// List retrieves users, optionally filtered by a case-insensitive role
	// name. An unknown role yields an empty result, not an error.
	List(ctx context.Context, tenantID, roleName string) ([]*domain.User, error)
	// RolesOf returns the role names assigned to a user within the tenant
	RolesOf(ctx context.Context, tenantID, userID string) ([]string, error)
}

// CredentialRepository defines passkey credential data access
type CredentialRepository interface {
	// Create persists a new passkey credential
	Create(ctx context.Context, cred *domain.PasskeyCredential) error
	// ListByUser retrieves all credentials registered by a user
	ListByUser(ctx context.Context, tenantID, userID string) ([]*domain.PasskeyCredential, error)
}
