package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidAssociation is returned for an association value outside the enum
var ErrInvalidAssociation = errors.New("invalid file association")

// FileAssociation identifies which entity kind an uploaded file belongs to
type FileAssociation string

const (
	FileAssociationRequest     FileAssociation = "request"
	FileAssociationAppointment FileAssociation = "appointment"
)

// ParseFileAssociation validates a raw association string
func ParseFileAssociation(raw string) (FileAssociation, error) {
	switch FileAssociation(raw) {
	case FileAssociationRequest, FileAssociationAppointment:
		return FileAssociation(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAssociation, raw)
	}
}

// File is an uploaded artifact tied to at most one request or appointment
type File struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	Association FileAssociation `json:"association"`
	OwnerID     string          `json:"owner_id"` // request or appointment id
	Name        string          `json:"name"`
	ContentType string          `json:"content_type,omitempty"`
	URL         string          `json:"url"`
	SizeBytes   int64           `json:"size_bytes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
}
