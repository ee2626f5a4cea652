package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of an appointment request
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusContacting RequestStatus = "contacting"
	RequestStatusScheduled  RequestStatus = "scheduled"
	RequestStatusWaitlisted RequestStatus = "waitlisted"
	RequestStatusDeclined   RequestStatus = "declined"
)

var (
	// ErrInvalidStatus is returned for a status value outside the enum
	ErrInvalidStatus = errors.New("invalid request status")
	// ErrInvalidTransition is returned when a lifecycle transition is not allowed
	ErrInvalidTransition = errors.New("invalid status transition")
)

// validTransitions is the lifecycle graph:
// pending -> contacting -> scheduled | waitlisted | declined,
// waitlisted may be reactivated back to contacting.
var validTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:    {RequestStatusContacting, RequestStatusScheduled, RequestStatusWaitlisted, RequestStatusDeclined},
	RequestStatusContacting: {RequestStatusContacting, RequestStatusScheduled, RequestStatusWaitlisted, RequestStatusDeclined},
	RequestStatusWaitlisted: {RequestStatusContacting, RequestStatusScheduled, RequestStatusDeclined},
	RequestStatusScheduled:  {},
	RequestStatusDeclined:   {},
}

// ParseRequestStatus validates a raw status string
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case RequestStatusPending, RequestStatusContacting, RequestStatusScheduled,
		RequestStatusWaitlisted, RequestStatusDeclined:
		return RequestStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// AppointmentRequest is an intake record created from the public booking form
type AppointmentRequest struct {
	ID              string        `json:"id"`
	TenantID        string        `json:"tenant_id"`
	CustomerID      string        `json:"customer_id,omitempty"`
	ArtistID        string        `json:"artist_id,omitempty"` // preferred artist user id
	Name            string        `json:"name"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	Description     string        `json:"description"`
	Placement       string        `json:"placement,omitempty"`
	Size            string        `json:"size,omitempty"`
	Budget          string        `json:"budget,omitempty"`
	Status          RequestStatus `json:"status"`
	LastContactedAt *time.Time    `json:"last_contacted_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	DeletedAt       *time.Time    `json:"deleted_at,omitempty"`
}

// NewAppointmentRequest creates a pending intake record
func NewAppointmentRequest(tenantID, name, phone, description string) (*AppointmentRequest, error) {
	if tenantID == "" {
		return nil, errors.New("tenant_id is required")
	}
	if name == "" {
		return nil, errors.New("name is required")
	}
	if phone == "" {
		return nil, errors.New("phone is required")
	}

	now := time.Now()
	return &AppointmentRequest{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        name,
		Phone:       phone,
		Description: description,
		Status:      RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CanTransitionTo reports whether the lifecycle graph allows moving to target
func (r *AppointmentRequest) CanTransitionTo(target RequestStatus) bool {
	for _, allowed := range validTransitions[r.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Activate moves a pending or waitlisted request into contacting and
// stamps last_contacted_at. Re-activating a request already in contacting
// is allowed and simply re-stamps the timestamp.
func (r *AppointmentRequest) Activate() error {
	switch r.Status {
	case RequestStatusPending, RequestStatusWaitlisted, RequestStatusContacting:
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, RequestStatusContacting)
	}
	now := time.Now()
	r.Status = RequestStatusContacting
	r.LastContactedAt = &now
	r.UpdatedAt = now
	return nil
}

// IsDeleted reports whether the record is soft-deleted
func (r *AppointmentRequest) IsDeleted() bool {
	return r.DeletedAt != nil
}
