package auth

import (
	"github.com/go-webauthn/webauthn/webauthn"

	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/domain"
)

// NewWebAuthn builds the relying party from passkey configuration
func NewWebAuthn(cfg *config.PasskeyConfig) (*webauthn.WebAuthn, error) {
	return webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.RPDisplayName,
		RPID:          cfg.RPID,
		RPOrigins:     cfg.RPOrigins,
	})
}

// WebAuthnUser adapts a staff user and their stored credentials to the
// webauthn.User interface.
type WebAuthnUser struct {
	User        *domain.User
	Credentials []webauthn.Credential
}

// WebAuthnID returns the user handle
func (u *WebAuthnUser) WebAuthnID() []byte {
	return []byte(u.User.ID)
}

// WebAuthnName returns the account identifier shown by authenticators
func (u *WebAuthnUser) WebAuthnName() string {
	return u.User.Email
}

// WebAuthnDisplayName returns the human-readable name
func (u *WebAuthnUser) WebAuthnDisplayName() string {
	return u.User.Name
}

// WebAuthnCredentials returns the user's registered credentials
func (u *WebAuthnUser) WebAuthnCredentials() []webauthn.Credential {
	return u.Credentials
}
