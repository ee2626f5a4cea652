package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bigrusstattoo/studio/internal/config"
)

// ErrSessionInvalid is returned for unparseable, mis-signed, or expired
// session tokens.
var ErrSessionInvalid = errors.New("invalid session token")

// SessionClaims is the JWT payload for a staff session
type SessionClaims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses session tokens
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokenManager creates a TokenManager from auth configuration
func NewTokenManager(cfg *config.AuthConfig) *TokenManager {
	ttl := cfg.SessionTokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		issuer: cfg.Issuer,
	}
}

// TTL returns the configured session lifetime
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Generate signs a session token for a staff user
func (m *TokenManager) Generate(userID, email, role, tenantID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Email:    email,
		Role:     role,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies a session token and returns its claims
func (m *TokenManager) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionInvalid
	}
	return claims, nil
}

// PrincipalFromClaims maps session claims to an authorization principal.
// Unknown roles degrade to anonymous rather than erroring.
func PrincipalFromClaims(claims *SessionClaims) Principal {
	role := RoleAnonymous
	switch claims.Role {
	case string(RoleAdmin):
		role = RoleAdmin
	case string(RoleArtist):
		role = RoleArtist
	}
	return Principal{
		Role:     role,
		UserID:   claims.Subject,
		Email:    claims.Email,
		TenantID: claims.TenantID,
	}
}
