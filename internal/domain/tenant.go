package domain

import (
	"time"
)

// Tenant represents an isolated studio instance. This deployment runs a
// single tenant, resolved by slug at startup, but every scoped entity
// still carries the tenant id so nothing can cross the boundary.
type Tenant struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
