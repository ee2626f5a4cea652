package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/stretchr/testify/assert"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/service"
)

// stubAuthService fails CreateSession with a fixed error. The embedded
// interface covers the ceremony methods, which these tests never call.
type stubAuthService struct {
	service.AuthService
	sessionErr error
}

func (s *stubAuthService) CreateSession(ctx context.Context, input *dto.SessionInput) (*dto.SessionResponse, error) {
	return nil, s.sessionErr
}

func TestAuthHandler_CreateSession_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown user", service.ErrUserNotFound, http.StatusUnauthorized},
		{"no roles", service.ErrNoRoles, http.StatusUnauthorized},
		{"bad token signature", auth.ErrTokenSignature, http.StatusUnauthorized},
		{"expired token", auth.ErrTokenExpired, http.StatusUnauthorized},
		{"consumed challenge", auth.ErrChallengeNotFound, http.StatusUnauthorized},
		{"failed ceremony", protocol.ErrVerification, http.StatusUnauthorized},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError},
		{"deadline exceeded", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{sessionErr: tt.err})
			r := gin.New()
			r.POST("/auth/session", h.CreateSession)

			payload, _ := json.Marshal(dto.SessionInput{Email: "russ@example.com", Token: "tok"})
			req := httptest.NewRequest(http.MethodPost, "/auth/session", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
