package auth

// Role is the access level of an authenticated actor
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleArtist    Role = "artist"
	RoleAnonymous Role = "anonymous"
)

// Principal is the actor issuing a request. Anonymous principals carry
// no user id. Artist principals carry the user id their artist profile
// points at, which is what ownership checks compare against.
type Principal struct {
	Role     Role   `json:"role"`
	UserID   string `json:"user_id,omitempty"`
	Email    string `json:"email,omitempty"`
	TenantID string `json:"tenant_id,omitempty"`
}

// Anonymous returns the unauthenticated principal
func Anonymous() Principal {
	return Principal{Role: RoleAnonymous}
}

// IsAdmin reports whether the principal has the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsArtist reports whether the principal has the artist role
func (p Principal) IsArtist() bool {
	return p.Role == RoleArtist
}

// IsAuthenticated reports whether the principal carries a verified identity
func (p Principal) IsAuthenticated() bool {
	return p.Role == RoleAdmin || p.Role == RoleArtist
}
