package dto

import (
	"time"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// CreateRequestInput is the public intake form payload
type CreateRequestInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone" binding:"required"`
	Description string `json:"description" binding:"required"`
	Placement   string `json:"placement"`
	Size        string `json:"size"`
	Budget      string `json:"budget"`
	ArtistID    string `json:"artist_id"`
}

// BulkUpdateStatusInput applies one status to a set of requests
type BulkUpdateStatusInput struct {
	RequestIDs []string `json:"request_ids" binding:"required,min=1"`
	Status     string   `json:"status" binding:"required"`
}

// BulkUpdateStatusResponse reports how many requests were updated.
// The update is best-effort: ids that were absent, soft-deleted, or in
// another tenant are skipped silently and only the count reflects it.
type BulkUpdateStatusResponse struct {
	Updated int64 `json:"updated"`
}

// NotificationResult reports the outbound dispatch attempted alongside
// an operation. Absent when the request had no phone number.
type NotificationResult struct {
	Success     bool   `json:"success"`
	ProviderRef string `json:"provider_ref,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ActivateRequestResponse pairs the transitioned request with the
// outcome of the contact attempt
type ActivateRequestResponse struct {
	Request      *RequestResponse    `json:"request"`
	Notification *NotificationResult `json:"notification,omitempty"`
}

// RequestResponse is the API shape of an appointment request
type RequestResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Description     string     `json:"description"`
	Placement       string     `json:"placement,omitempty"`
	Size            string     `json:"size,omitempty"`
	Budget          string     `json:"budget,omitempty"`
	ArtistID        string     `json:"artist_id,omitempty"`
	Status          string     `json:"status"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewRequestResponse converts a domain request to its API shape
func NewRequestResponse(req *domain.AppointmentRequest) *RequestResponse {
	return &RequestResponse{
		ID:              req.ID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Description:     req.Description,
		Placement:       req.Placement,
		Size:            req.Size,
		Budget:          req.Budget,
		ArtistID:        req.ArtistID,
		Status:          string(req.Status),
		LastContactedAt: req.LastContactedAt,
		CreatedAt:       req.CreatedAt,
	}
}
