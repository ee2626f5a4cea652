package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

const testTenantSlug = "big-russ"

type authFixture struct {
	svc    AuthService
	issuer *auth.PasskeyTokenIssuer
	tokens *auth.TokenManager
	users  *repository.MemoryUserRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	tenant := &domain.Tenant{ID: testTenantID, Name: "Big Russ Tattoo", Slug: testTenantSlug}
	issuer := auth.NewPasskeyTokenIssuer("bootstrap-secret")
	tokens := auth.NewTokenManager(&config.AuthConfig{
		Secret:          "session-secret",
		SessionTokenTTL: time.Hour,
		Issuer:          "studio-test",
	})
	users := repository.NewMemoryUserRepository()
	creds := repository.NewMemoryCredentialRepository()

	// WebAuthn and the challenge store are only touched by the ceremony
	// endpoints, which are not exercised here.
	svc := NewAuthService(tenant, nil, nil, issuer, tokens, users, creds, logger.NewNop())
	return &authFixture{svc: svc, issuer: issuer, tokens: tokens, users: users}
}

func (f *authFixture) seedUser(id, email string, roles ...string) {
	now := time.Now()
	f.users.Put(&domain.User{
		ID:        id,
		TenantID:  testTenantID,
		Name:      "Staff",
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, roles...)
}

func TestNewPasskeyRecord_StampsCreatedAt(t *testing.T) {
	record := newPasskeyRecord(testTenantID, "user-1", []byte(`{}`))

	assert.Equal(t, testTenantID, record.TenantID)
	assert.Equal(t, "user-1", record.UserID)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestAuthService_CreateSession(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser("user-1", "russ@example.com", "admin")

	resp, err := f.svc.CreateSession(context.Background(), &dto.SessionInput{
		Email: "russ@example.com",
		Token: f.issuer.Generate(testTenantSlug),
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.Role)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := f.tokens.Parse(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, testTenantID, claims.TenantID)
}

func TestAuthService_CreateSession_AdminWins(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser("user-1", "russ@example.com", "Artist", "Admin")

	resp, err := f.svc.CreateSession(context.Background(), &dto.SessionInput{
		Email: "russ@example.com",
		Token: f.issuer.Generate(testTenantSlug),
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
}

func TestAuthService_CreateSession_ArtistRole(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser("user-2", "lee@example.com", "artist")

	resp, err := f.svc.CreateSession(context.Background(), &dto.SessionInput{
		Email: "lee@example.com",
		Token: f.issuer.Generate(testTenantSlug),
	})
	require.NoError(t, err)
	assert.Equal(t, "artist", resp.Role)
}

func TestAuthService_CreateSession_BadToken(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser("user-1", "russ@example.com", "admin")

	_, err := f.svc.CreateSession(context.Background(), &dto.SessionInput{
		Email: "russ@example.com",
		Token: "garbage",
	})
	assert.ErrorIs(t, err, auth.ErrTokenMalformed)
}

func TestAuthService_CreateSession_WrongSlug(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser("user-1", "russ@example.com", "admin")

	other := auth.NewPasskeyTokenIssuer("bootstrap-secret")
	_, err := f.svc.CreateSession(context.Background(), &dto.SessionInput{
		Email: "russ@example.com",
		Token: other.Generate("some-other-studio"),
	})
	assert.ErrorIs(t, err, auth.ErrTokenSignature)
}

func TestAuthService_CreateSession_UnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.CreateSession(context.Background(), &dto.SessionInput{
		Email: "nobody@example.com",
		Token: f.issuer.Generate(testTenantSlug),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_CreateSession_NoRoles(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser("user-3", "temp@example.com")

	_, err := f.svc.CreateSession(context.Background(), &dto.SessionInput{
		Email: "temp@example.com",
		Token: f.issuer.Generate(testTenantSlug),
	})
	assert.ErrorIs(t, err, ErrNoRoles)
}
