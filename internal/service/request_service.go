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
	"github.com/bigrusstattoo/studio/internal/events"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

var (
	// ErrRequestNotFound is returned for absent or cross-tenant ids.
	// The two cases are deliberately indistinguishable.
	ErrRequestNotFound = errors.New("appointment request not found")
	// ErrForbidden is returned when a principal's role does not allow an operation
	ErrForbidden = errors.New("forbidden")
)

// RequestService governs the appointment-request lifecycle
type RequestService interface {
	// Create accepts a public intake submission (anonymous-allowed)
	Create(ctx context.Context, input *dto.CreateRequestInput) (*domain.AppointmentRequest, error)
	// Activate moves a pending or waitlisted request into contacting,
	// stamping last_contacted_at and notifying the requester best-effort.
	Activate(ctx context.Context, principal auth.Principal, id string) (*domain.AppointmentRequest, *SendResult, error)
	// BulkUpdateStatus applies a status to a set of requests, returning
	// the number actually updated. Best-effort, not atomic.
	BulkUpdateStatus(ctx context.Context, principal auth.Principal, input *dto.BulkUpdateStatusInput) (int64, error)
	// List retrieves requests visible to the principal, newest first
	List(ctx context.Context, principal auth.Principal, includeDeleted bool) ([]*domain.AppointmentRequest, error)
}

// requestService implements RequestService
type requestService struct {
	tenantID  string
	repo      repository.RequestRepository
	notify    NotifyService
	publisher *events.Publisher
	log       *logger.Logger
}

// NewRequestService creates a RequestService scoped to the resolved tenant
func NewRequestService(
	tenantID string,
	repo repository.RequestRepository,
	notify NotifyService,
	publisher *events.Publisher,
	log *logger.Logger,
) RequestService {
	return &requestService{
		tenantID:  tenantID,
		repo:      repo,
		notify:    notify,
		publisher: publisher,
		log:       log,
	}
}

// Create accepts a public intake submission
func (s *requestService) Create(ctx context.Context, input *dto.CreateRequestInput) (*domain.AppointmentRequest, error) {
	req, err := domain.NewAppointmentRequest(s.tenantID, input.Name, input.Phone, input.Description)
	if err != nil {
		return nil, err
	}
	req.Email = input.Email
	req.Placement = input.Placement
	req.Size = input.Size
	req.Budget = input.Budget
	req.ArtistID = input.ArtistID

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "intake request created",
		zap.String("request_id", req.ID),
		zap.String("artist_id", req.ArtistID),
	)
	return req, nil
}

// Activate moves a request into contacting.
//
// Not wrapped in a transaction: two concurrent activations of the same
// id can both succeed, last write winning on last_contacted_at. That is
// an accepted race for a front-office action taken by a single admin.
func (s *requestService) Activate(ctx context.Context, principal auth.Principal, id string) (*domain.AppointmentRequest, *SendResult, error) {
	if !principal.IsAdmin() {
		return nil, nil, ErrForbidden
	}

	req, err := s.repo.GetByID(ctx, s.tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	if req == nil {
		return nil, nil, ErrRequestNotFound
	}

	fromStatus := req.Status
	if err := req.Activate(); err != nil {
		return nil, nil, err
	}
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, nil, err
	}

	s.publisher.PublishStatusChanged(ctx, &events.RequestStatusChangedEvent{
		EventType:  "request.status_changed",
		TenantID:   s.tenantID,
		RequestID:  req.ID,
		FromStatus: fromStatus,
		ToStatus:   req.Status,
		ActorID:    principal.UserID,
		Timestamp:  time.Now(),
	})

	// Notification is best-effort; a failed send never rolls back the
	// transition and is reported alongside the updated request.
	var result *SendResult
	if req.Phone != "" {
		message := fmt.Sprintf("Hi %s, this is Big Russ Tattoo. We're reaching out about your appointment request.", req.Name)
		result = s.notify.Send(ctx, NotifyKindSMS, req.Phone, message)
		if !result.Success {
			s.log.WarnContext(ctx, "activation notification failed",
				zap.String("request_id", req.ID),
				zap.String("error", result.Error),
			)
		}
	}

	return req, result, nil
}

// BulkUpdateStatus applies a status to every request in ids that belongs
// to the tenant and is not soft-deleted. Partial application is expected
// and reported only as a count.
func (s *requestService) BulkUpdateStatus(ctx context.Context, principal auth.Principal, input *dto.BulkUpdateStatusInput) (int64, error) {
	if !principal.IsAdmin() {
		return 0, ErrForbidden
	}

	status, err := domain.ParseRequestStatus(input.Status)
	if err != nil {
		return 0, err
	}

	updated, err := s.repo.BulkUpdateStatus(ctx, s.tenantID, input.RequestIDs, status)
	if err != nil {
		return 0, err
	}

	if updated < int64(len(input.RequestIDs)) {
		s.log.InfoContext(ctx, "bulk status update skipped some ids",
			zap.Int("requested", len(input.RequestIDs)),
			zap.Int64("updated", updated),
		)
	}
	return updated, nil
}

// List retrieves requests visible to the principal
func (s *requestService) List(ctx context.Context, principal auth.Principal, includeDeleted bool) ([]*domain.AppointmentRequest, error) {
	filter := repository.RequestListFilter{IncludeDeleted: includeDeleted}

	switch {
	case principal.IsAdmin():
	case principal.IsArtist():
		// Artists only see requests pointed at them.
		filter.ArtistID = principal.UserID
		filter.IncludeDeleted = false
	default:
		return nil, ErrForbidden
	}

	return s.repo.List(ctx, s.tenantID, filter)
}
