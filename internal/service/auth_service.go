package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

const (
	ceremonyRegistration = "registration"
	ceremonyLogin        = "login"
)

var (
	// ErrUserNotFound is returned when no staff account matches the email
	ErrUserNotFound = errors.New("user not found")
	// ErrNoRoles is returned when a user has no role assignment and so no
	// session can be issued for them.
	ErrNoRoles = errors.New("user has no assigned role")
)

// AuthService runs the passkey ceremonies and session issuance. A
// completed login ceremony yields a short-lived bootstrap token, which
// is then exchanged for a signed session.
type AuthService interface {
	// BeginRegistration starts a passkey registration ceremony
	BeginRegistration(ctx context.Context, email string) (*protocol.CredentialCreation, error)
	// FinishRegistration completes registration and stores the credential
	FinishRegistration(ctx context.Context, email string, r *http.Request) error
	// BeginLogin starts a passkey login ceremony
	BeginLogin(ctx context.Context, email string) (*protocol.CredentialAssertion, error)
	// FinishLogin completes login and mints a bootstrap token
	FinishLogin(ctx context.Context, email string, r *http.Request) (*dto.PasskeyVerifiedResponse, error)
	// CreateSession exchanges a valid bootstrap token for a session token
	CreateSession(ctx context.Context, input *dto.SessionInput) (*dto.SessionResponse, error)
}

// authService implements AuthService
type authService struct {
	tenant     *domain.Tenant
	wa         *webauthn.WebAuthn
	challenges *auth.ChallengeStore
	issuer     *auth.PasskeyTokenIssuer
	tokens     *auth.TokenManager
	users      repository.UserRepository
	creds      repository.CredentialRepository
	log        *logger.Logger
}

// NewAuthService creates an AuthService bound to the resolved tenant
func NewAuthService(
	tenant *domain.Tenant,
	wa *webauthn.WebAuthn,
	challenges *auth.ChallengeStore,
	issuer *auth.PasskeyTokenIssuer,
	tokens *auth.TokenManager,
	users repository.UserRepository,
	creds repository.CredentialRepository,
	log *logger.Logger,
) AuthService {
	return &authService{
		tenant:     tenant,
		wa:         wa,
		challenges: challenges,
		issuer:     issuer,
		tokens:     tokens,
		users:      users,
		creds:      creds,
		log:        log,
	}
}

// loadWebAuthnUser resolves a staff user and their stored credentials
func (s *authService) loadWebAuthnUser(ctx context.Context, email string) (*auth.WebAuthnUser, error) {
	user, err := s.users.GetByEmail(ctx, s.tenant.ID, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stored, err := s.creds.ListByUser(ctx, s.tenant.ID, user.ID)
	if err != nil {
		return nil, err
	}

	credentials := make([]webauthn.Credential, 0, len(stored))
	for _, c := range stored {
		var cred webauthn.Credential
		if err := json.Unmarshal(c.Credential, &cred); err != nil {
			s.log.WarnContext(ctx, "skipping unreadable passkey credential",
				zap.String("credential_id", c.ID),
				zap.Error(err),
			)
			continue
		}
		credentials = append(credentials, cred)
	}

	return &auth.WebAuthnUser{User: user, Credentials: credentials}, nil
}

// BeginRegistration starts a registration ceremony for a staff account
func (s *authService) BeginRegistration(ctx context.Context, email string) (*protocol.CredentialCreation, error) {
	waUser, err := s.loadWebAuthnUser(ctx, email)
	if err != nil {
		return nil, err
	}

	options, session, err := s.wa.BeginRegistration(waUser)
	if err != nil {
		return nil, err
	}
	if err := s.challenges.Save(ctx, ceremonyRegistration, waUser.User.ID, session); err != nil {
		return nil, err
	}
	return options, nil
}

// FinishRegistration completes the ceremony and persists the credential
func (s *authService) FinishRegistration(ctx context.Context, email string, r *http.Request) error {
	waUser, err := s.loadWebAuthnUser(ctx, email)
	if err != nil {
		return err
	}

	session, err := s.challenges.Take(ctx, ceremonyRegistration, waUser.User.ID)
	if err != nil {
		return err
	}

	credential, err := s.wa.FinishRegistration(waUser, *session, r)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(credential)
	if err != nil {
		return err
	}
	if err := s.creds.Create(ctx, newPasskeyRecord(s.tenant.ID, waUser.User.ID, payload)); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "passkey registered",
		zap.String("user_id", waUser.User.ID),
	)
	return nil
}

// newPasskeyRecord builds the stored form of a registered credential.
// CreatedAt is stamped here because the insert writes the column
// explicitly rather than relying on the database default.
func newPasskeyRecord(tenantID, userID string, payload []byte) *domain.PasskeyCredential {
	return &domain.PasskeyCredential{
		ID:         uuid.New().String(),
		UserID:     userID,
		TenantID:   tenantID,
		Credential: payload,
		CreatedAt:  time.Now(),
	}
}

// BeginLogin starts a login ceremony for a staff account
func (s *authService) BeginLogin(ctx context.Context, email string) (*protocol.CredentialAssertion, error) {
	waUser, err := s.loadWebAuthnUser(ctx, email)
	if err != nil {
		return nil, err
	}

	options, session, err := s.wa.BeginLogin(waUser)
	if err != nil {
		return nil, err
	}
	if err := s.challenges.Save(ctx, ceremonyLogin, waUser.User.ID, session); err != nil {
		return nil, err
	}
	return options, nil
}

// FinishLogin completes the ceremony and mints a bootstrap token bound
// to the tenant slug.
func (s *authService) FinishLogin(ctx context.Context, email string, r *http.Request) (*dto.PasskeyVerifiedResponse, error) {
	waUser, err := s.loadWebAuthnUser(ctx, email)
	if err != nil {
		return nil, err
	}

	session, err := s.challenges.Take(ctx, ceremonyLogin, waUser.User.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.wa.FinishLogin(waUser, *session, r); err != nil {
		s.log.WarnContext(ctx, "passkey login verification failed",
			zap.String("user_id", waUser.User.ID),
			zap.Error(err),
		)
		return nil, err
	}

	return &dto.PasskeyVerifiedResponse{
		Verified: true,
		Token:    s.issuer.Generate(s.tenant.Slug),
	}, nil
}

// CreateSession exchanges a bootstrap token for a signed session. The
// token must have been minted for this tenant's slug within its TTL.
func (s *authService) CreateSession(ctx context.Context, input *dto.SessionInput) (*dto.SessionResponse, error) {
	slug, err := s.issuer.Verify(input.Token)
	if err != nil {
		return nil, err
	}
	if slug != s.tenant.Slug {
		return nil, auth.ErrTokenSignature
	}

	user, err := s.users.GetByEmail(ctx, s.tenant.ID, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	role, err := s.resolveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Email, role, s.tenant.ID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session issued",
		zap.String("user_id", user.ID),
		zap.String("role", role),
	)
	return &dto.SessionResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		Role:        role,
	}, nil
}

// resolveRole picks the strongest role assigned to the user
func (s *authService) resolveRole(ctx context.Context, userID string) (string, error) {
	roles, err := s.users.RolesOf(ctx, s.tenant.ID, userID)
	if err != nil {
		return "", err
	}

	picked := ""
	for _, r := range roles {
		switch strings.ToLower(r) {
		case string(auth.RoleAdmin):
			return string(auth.RoleAdmin), nil
		case string(auth.RoleArtist):
			picked = string(auth.RoleArtist)
		}
	}
	if picked == "" {
		return "", ErrNoRoles
	}
	return picked, nil
}
