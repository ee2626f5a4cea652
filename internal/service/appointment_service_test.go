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

func seedAppointment(t *testing.T, repo *repository.MemoryAppointmentRepository, artistID string, createdAt time.Time) *domain.Appointment {
	t.Helper()
	appt := &domain.Appointment{
		ID:        uuid.New().String(),
		TenantID:  testTenantID,
		ArtistID:  artistID,
		Title:     "Sleeve session",
		StartTime: createdAt.Add(72 * time.Hour),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), appt))
	return appt
}

func seedBlock(t *testing.T, repo *repository.MemoryAvailabilityRepository, tenantID, artistID string) *domain.AvailabilityBlock {
	t.Helper()
	now := time.Now()
	block := &domain.AvailabilityBlock{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ArtistID:  artistID,
		StartTime: now,
		EndTime:   now.Add(8 * time.Hour),
		Reason:    "convention",
		CreatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), block))
	return block
}

func TestAppointmentService_ListForArtist(t *testing.T) {
	appts := repository.NewMemoryAppointmentRepository()
	blocks := repository.NewMemoryAvailabilityRepository()
	svc := NewAppointmentService(testTenantID, appts, blocks, logger.NewNop())

	today := seedAppointment(t, appts, testArtistID, time.Now())
	seedAppointment(t, appts, testArtistID, time.Now().Add(-48*time.Hour))
	seedAppointment(t, appts, otherTestArtistID, time.Now())

	resp, err := svc.ListForArtist(context.Background(), artistPrincipal())
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 2)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, today.ID, resp.Notifications[0].AppointmentID)
}

func TestAppointmentService_ListForArtist_Anonymous(t *testing.T) {
	svc := NewAppointmentService(testTenantID,
		repository.NewMemoryAppointmentRepository(),
		repository.NewMemoryAvailabilityRepository(),
		logger.NewNop())

	_, err := svc.ListForArtist(context.Background(), auth.Anonymous())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAppointmentService_ListAll(t *testing.T) {
	appts := repository.NewMemoryAppointmentRepository()
	svc := NewAppointmentService(testTenantID, appts, repository.NewMemoryAvailabilityRepository(), logger.NewNop())

	seedAppointment(t, appts, testArtistID, time.Now())
	seedAppointment(t, appts, otherTestArtistID, time.Now())

	out, err := svc.ListAll(context.Background(), adminPrincipal())
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = svc.ListAll(context.Background(), artistPrincipal())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAppointmentService_DeleteAvailability(t *testing.T) {
	blocks := repository.NewMemoryAvailabilityRepository()
	svc := NewAppointmentService(testTenantID, repository.NewMemoryAppointmentRepository(), blocks, logger.NewNop())

	t.Run("artist deletes own block", func(t *testing.T) {
		block := seedBlock(t, blocks, testTenantID, testArtistID)
		require.NoError(t, svc.DeleteAvailability(context.Background(), artistPrincipal(), block.ID))

		gone, err := blocks.GetByID(context.Background(), testTenantID, block.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("artist cannot delete another's block", func(t *testing.T) {
		block := seedBlock(t, blocks, testTenantID, otherTestArtistID)
		err := svc.DeleteAvailability(context.Background(), artistPrincipal(), block.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin deletes any block", func(t *testing.T) {
		block := seedBlock(t, blocks, testTenantID, otherTestArtistID)
		assert.NoError(t, svc.DeleteAvailability(context.Background(), adminPrincipal(), block.ID))
	})

	t.Run("cross-tenant block is not found", func(t *testing.T) {
		block := seedBlock(t, blocks, otherTenantID, testArtistID)
		err := svc.DeleteAvailability(context.Background(), adminPrincipal(), block.ID)
		assert.ErrorIs(t, err, ErrAvailabilityNotFound)
	})

	t.Run("anonymous forbidden", func(t *testing.T) {
		block := seedBlock(t, blocks, testTenantID, testArtistID)
		err := svc.DeleteAvailability(context.Background(), auth.Anonymous(), block.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
