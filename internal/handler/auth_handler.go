package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-webauthn/webauthn/protocol"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/response"
	"github.com/bigrusstattoo/studio/internal/service"
)

// AuthHandler handles passkey ceremonies and session issuance
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterOptions starts a passkey registration ceremony
// POST /auth/passkey/register/options
func (h *AuthHandler) RegisterOptions(c *gin.Context) {
	var req dto.PasskeyOptionsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	options, err := h.authService.BeginRegistration(c.Request.Context(), req.Email)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(options))
}

// RegisterVerify completes a passkey registration ceremony. The email
// rides on the query string because the body is the raw authenticator
// response consumed by the WebAuthn library.
// POST /auth/passkey/register/verify?email=
func (h *AuthHandler) RegisterVerify(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Email is required"))
		return
	}

	if err := h.authService.FinishRegistration(c.Request.Context(), email, c.Request); err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"registered": true}))
}

// LoginOptions starts a passkey login ceremony
// POST /auth/passkey/login/options
func (h *AuthHandler) LoginOptions(c *gin.Context) {
	var req dto.PasskeyOptionsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	options, err := h.authService.BeginLogin(c.Request.Context(), req.Email)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(options))
}

// LoginVerify completes a passkey login ceremony and mints the
// bootstrap token
// POST /auth/passkey/login/verify?email=
func (h *AuthHandler) LoginVerify(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Email is required"))
		return
	}

	result, err := h.authService.FinishLogin(c.Request.Context(), email, c.Request)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// CreateSession exchanges a bootstrap token for a session token
// POST /auth/session
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req dto.SessionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.CreateSession(c.Request.Context(), &req)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// writeAuthError maps auth failures to the response envelope. Unknown
// accounts, consumed challenges, bad tokens, and failed ceremonies all
// come back as the same 401 so the endpoints do not reveal which emails
// have accounts. Anything else is an infrastructure failure and
// surfaces as 500.
func (h *AuthHandler) writeAuthError(c *gin.Context, err error) {
	var protoErr *protocol.Error
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNoRoles),
		errors.Is(err, auth.ErrChallengeNotFound),
		errors.Is(err, auth.ErrTokenMalformed),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenSignature),
		errors.As(err, &protoErr):
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
	}
}
