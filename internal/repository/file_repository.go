package repository

import (
	"context"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// FileListFilter narrows file listings by association kind. A nil
// Association lists files of every kind.
type FileListFilter struct {
	Association    *domain.FileAssociation
	IncludeDeleted bool
}

// FileRepository defines uploaded-file data access, tenant-scoped
type FileRepository interface {
	// Create persists a new file record
	Create(ctx context.Context, file *domain.File) error
	// List retrieves files matching the filter, created_at descending
	List(ctx context.Context, tenantID string, filter FileListFilter) ([]*domain.File, error)
}
