package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

func seedFile(t *testing.T, repo *repository.MemoryFileRepository, assoc domain.FileAssociation) *domain.File {
	t.Helper()
	file := &domain.File{
		ID:          uuid.New().String(),
		TenantID:    testTenantID,
		Association: assoc,
		OwnerID:     uuid.New().String(),
		Name:        "reference.jpg",
		URL:         "https://files.example.com/reference.jpg",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), file))
	return file
}

func TestFileService_List(t *testing.T) {
	files := repository.NewMemoryFileRepository()
	svc := NewFileService(testTenantID, files, logger.NewNop())

	seedFile(t, files, domain.FileAssociationRequest)
	seedFile(t, files, domain.FileAssociationRequest)
	seedFile(t, files, domain.FileAssociationAppointment)

	t.Run("all kinds", func(t *testing.T) {
		out, err := svc.List(context.Background(), adminPrincipal(), "")
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})

	t.Run("filter by kind", func(t *testing.T) {
		out, err := svc.List(context.Background(), adminPrincipal(), "request")
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := svc.List(context.Background(), adminPrincipal(), "invoice")
		assert.ErrorIs(t, err, domain.ErrInvalidAssociation)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		_, err := svc.List(context.Background(), artistPrincipal(), "")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
