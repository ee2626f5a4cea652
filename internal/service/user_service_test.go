package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

func TestUserService_List(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	now := time.Now()
	users.Put(&domain.User{ID: "u1", TenantID: testTenantID, Name: "Russ", Email: "russ@example.com", CreatedAt: now}, "Admin")
	users.Put(&domain.User{ID: "u2", TenantID: testTenantID, Name: "Lee", Email: "lee@example.com", CreatedAt: now}, "artist")
	users.Put(&domain.User{ID: "u3", TenantID: otherTenantID, Name: "Sam", Email: "sam@example.com", CreatedAt: now}, "artist")

	svc := NewUserService(testTenantID, users, logger.NewNop())

	t.Run("all staff", func(t *testing.T) {
		out, err := svc.List(context.Background(), adminPrincipal(), "")
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("role filter is case-insensitive", func(t *testing.T) {
		out, err := svc.List(context.Background(), adminPrincipal(), "ARTIST")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "u2", out[0].ID)
	})

	t.Run("unknown role yields empty set", func(t *testing.T) {
		out, err := svc.List(context.Background(), adminPrincipal(), "apprentice")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("artist forbidden", func(t *testing.T) {
		_, err := svc.List(context.Background(), artistPrincipal(), "")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("anonymous forbidden", func(t *testing.T) {
		_, err := svc.List(context.Background(), auth.Anonymous(), "")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
