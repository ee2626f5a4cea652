package repository

import (
	"context"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// AppointmentListFilter narrows appointment listings
type AppointmentListFilter struct {
	ArtistID       string
	CustomerID     string
	IncludeDeleted bool
}

// AppointmentRepository defines appointment data access, tenant-scoped
type AppointmentRepository interface {
	// Create persists a new appointment
	Create(ctx context.Context, appt *domain.Appointment) error
	// GetByID retrieves an appointment within the tenant, nil when absent
	GetByID(ctx context.Context, tenantID, id string) (*domain.Appointment, error)
	// List retrieves appointments matching the filter, start_time descending
	List(ctx context.Context, tenantID string, filter AppointmentListFilter) ([]*domain.Appointment, error)
	// SoftDelete marks an appointment deleted
	SoftDelete(ctx context.Context, tenantID, id string) error
}

// AvailabilityRepository defines availability-block data access, tenant-scoped
type AvailabilityRepository interface {
	// Create persists a new availability block
	Create(ctx context.Context, block *domain.AvailabilityBlock) error
	// GetByID retrieves a block within the tenant, nil when absent
	GetByID(ctx context.Context, tenantID, id string) (*domain.AvailabilityBlock, error)
	// SoftDelete marks a block deleted
	SoftDelete(ctx context.Context, tenantID, id string) error
}
