package service

import (
	"context"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

// UserService serves the staff directory
type UserService interface {
	// List retrieves staff users, optionally filtered by role name.
	// The directory carries staff emails, so only admins may read it.
	List(ctx context.Context, principal auth.Principal, roleName string) ([]*domain.User, error)
}

// userService implements UserService
type userService struct {
	tenantID string
	users    repository.UserRepository
	log      *logger.Logger
}

// NewUserService creates a UserService scoped to the resolved tenant
func NewUserService(tenantID string, users repository.UserRepository, log *logger.Logger) UserService {
	return &userService{
		tenantID: tenantID,
		users:    users,
		log:      log,
	}
}

// List retrieves staff users, role filter case-insensitive
func (s *userService) List(ctx context.Context, principal auth.Principal, roleName string) ([]*domain.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.users.List(ctx, s.tenantID, roleName)
}
