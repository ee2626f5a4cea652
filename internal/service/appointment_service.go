package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

// ErrAvailabilityNotFound is returned for absent or cross-tenant blocks
var ErrAvailabilityNotFound = errors.New("availability block not found")

// AppointmentService serves the artist and admin schedule views
type AppointmentService interface {
	// ListForArtist retrieves the principal's appointments plus same-day
	// booking notifications, both derived at read time.
	ListForArtist(ctx context.Context, principal auth.Principal) (*dto.ArtistAppointmentsResponse, error)
	// ListAll retrieves every appointment in the tenant (admin only)
	ListAll(ctx context.Context, principal auth.Principal) ([]*domain.Appointment, error)
	// DeleteAvailability removes an availability block. Admins may delete
	// any block; artists only their own. Cross-tenant ids are NotFound.
	DeleteAvailability(ctx context.Context, principal auth.Principal, id string) error
}

// appointmentService implements AppointmentService
type appointmentService struct {
	tenantID     string
	appointments repository.AppointmentRepository
	availability repository.AvailabilityRepository
	log          *logger.Logger
}

// NewAppointmentService creates an AppointmentService scoped to the resolved tenant
func NewAppointmentService(
	tenantID string,
	appointments repository.AppointmentRepository,
	availability repository.AvailabilityRepository,
	log *logger.Logger,
) AppointmentService {
	return &appointmentService{
		tenantID:     tenantID,
		appointments: appointments,
		availability: availability,
		log:          log,
	}
}

// ListForArtist retrieves the principal's appointments and same-day flags
func (s *appointmentService) ListForArtist(ctx context.Context, principal auth.Principal) (*dto.ArtistAppointmentsResponse, error) {
	if !principal.IsArtist() && !principal.IsAdmin() {
		return nil, ErrForbidden
	}

	appointments, err := s.appointments.List(ctx, s.tenantID, repository.AppointmentListFilter{
		ArtistID: principal.UserID,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := &dto.ArtistAppointmentsResponse{
		Appointments:  make([]*dto.AppointmentResponse, 0, len(appointments)),
		Notifications: make([]*dto.AppointmentNotification, 0),
	}
	for _, appt := range appointments {
		resp.Appointments = append(resp.Appointments, dto.NewAppointmentResponse(appt))
		if appt.CreatedOn(now) {
			resp.Notifications = append(resp.Notifications, &dto.AppointmentNotification{
				AppointmentID: appt.ID,
				Title:         appt.Title,
				Message:       fmt.Sprintf("New booking today: %s", appt.Title),
			})
		}
	}
	return resp, nil
}

// ListAll retrieves every appointment in the tenant
func (s *appointmentService) ListAll(ctx context.Context, principal auth.Principal) ([]*domain.Appointment, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.appointments.List(ctx, s.tenantID, repository.AppointmentListFilter{})
}

// DeleteAvailability removes an availability block
func (s *appointmentService) DeleteAvailability(ctx context.Context, principal auth.Principal, id string) error {
	if !principal.IsAuthenticated() {
		return ErrForbidden
	}

	block, err := s.availability.GetByID(ctx, s.tenantID, id)
	if err != nil {
		return err
	}
	if block == nil {
		return ErrAvailabilityNotFound
	}

	res := auth.Resource{
		Kind:     auth.KindAvailabilityBlock,
		TenantID: block.TenantID,
		ArtistID: block.ArtistID,
	}
	if !auth.InTenant(s.tenantID, res) {
		return ErrAvailabilityNotFound
	}
	if !auth.CanAccess(principal, auth.OpDelete, res) {
		return ErrForbidden
	}

	if err := s.availability.SoftDelete(ctx, s.tenantID, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "availability block deleted",
		zap.String("block_id", id),
		zap.String("actor_id", principal.UserID),
	)
	return nil
}
