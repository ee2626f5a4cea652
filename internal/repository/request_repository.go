package repository

import (
	"context"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// RequestListFilter narrows appointment-request listings. The zero value
// lists every non-deleted request in the tenant, newest first.
type RequestListFilter struct {
	Status         *domain.RequestStatus
	ArtistID       string
	CustomerID     string
	IncludeDeleted bool
}

// RequestRepository defines appointment-request data access. Every
// method is scoped to a tenant; ids from other tenants behave as absent.
type RequestRepository interface {
	// Create persists a new intake record
	Create(ctx context.Context, req *domain.AppointmentRequest) error
	// GetByID retrieves a request within the tenant, nil when absent
	GetByID(ctx context.Context, tenantID, id string) (*domain.AppointmentRequest, error)
	// List retrieves requests matching the filter, created_at descending
	List(ctx context.Context, tenantID string, filter RequestListFilter) ([]*domain.AppointmentRequest, error)
	// Update persists status and contact timestamps
	Update(ctx context.Context, req *domain.AppointmentRequest) error
	// BulkUpdateStatus applies a status to every id that belongs to the
	// tenant and is not soft-deleted, returning the number updated.
	// Deliberately not atomic across the set: foreign or absent ids
	// silently drop out of the predicate.
	BulkUpdateStatus(ctx context.Context, tenantID string, ids []string, status domain.RequestStatus) (int64, error)
	// SoftDelete marks a request deleted
	SoftDelete(ctx context.Context, tenantID, id string) error
}
