package service

import (
	"context"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

// FileService serves uploaded-file listings
type FileService interface {
	// List retrieves file records, optionally narrowed to one association
	// kind ("request" or "appointment"). Admin only.
	List(ctx context.Context, principal auth.Principal, associationType string) ([]*domain.File, error)
}

// fileService implements FileService
type fileService struct {
	tenantID string
	files    repository.FileRepository
	log      *logger.Logger
}

// NewFileService creates a FileService scoped to the resolved tenant
func NewFileService(tenantID string, files repository.FileRepository, log *logger.Logger) FileService {
	return &fileService{
		tenantID: tenantID,
		files:    files,
		log:      log,
	}
}

// List retrieves file records matching the association filter
func (s *fileService) List(ctx context.Context, principal auth.Principal, associationType string) ([]*domain.File, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}

	filter := repository.FileListFilter{}
	if associationType != "" {
		assoc, err := domain.ParseFileAssociation(associationType)
		if err != nil {
			return nil, err
		}
		filter.Association = &assoc
	}
	return s.files.List(ctx, s.tenantID, filter)
}
