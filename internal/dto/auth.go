package dto

// PasskeyOptionsInput identifies the account starting a ceremony
type PasskeyOptionsInput struct {
	Email string `json:"email" binding:"required,email"`
}

// PasskeyVerifiedResponse carries the short-lived bootstrap token minted
// after a completed ceremony
type PasskeyVerifiedResponse struct {
	Verified bool   `json:"verified"`
	Token    string `json:"token,omitempty"`
}

// SessionInput exchanges a bootstrap token for a session
type SessionInput struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// SessionResponse carries the signed session token
type SessionResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Role        string `json:"role"`
}

// UserResponse is the API shape of a staff user
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
