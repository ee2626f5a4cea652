package domain

import (
	"time"
)

// User is a staff member (admin or artist) within a tenant
type User struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Role is a named function within a tenant (e.g. "admin", "artist").
// Role names match case-insensitively.
type Role struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
}

// UserRole assigns a role to a user within a tenant
type UserRole struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}

// PasskeyCredential is a stored WebAuthn credential belonging to a user
type PasskeyCredential struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	TenantID   string    `json:"tenant_id"`
	Credential []byte    `json:"-"` // serialized webauthn credential
	CreatedAt  time.Time `json:"created_at"`
}
