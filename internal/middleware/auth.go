package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/response"
)

// principalKey is the gin context key holding the resolved principal
const principalKey = "principal"

// Principal retrieves the resolved principal from the gin context,
// defaulting to anonymous.
func Principal(c *gin.Context) auth.Principal {
	if v, exists := c.Get(principalKey); exists {
		if p, ok := v.(auth.Principal); ok {
			return p
		}
	}
	return auth.Anonymous()
}

// ResolvePrincipal parses the Authorization header into a principal.
// Missing or invalid tokens resolve to anonymous; route-level guards
// decide whether that is acceptable.
func ResolvePrincipal(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(principalKey, auth.Anonymous())
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Set(principalKey, auth.Anonymous())
			c.Next()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			c.Set(principalKey, auth.Anonymous())
			c.Next()
			return
		}

		c.Set(principalKey, auth.PrincipalFromClaims(claims))
		c.Next()
	}
}

// RequireAuth aborts with 401 when no verified identity is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Principal(c).IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 401 for anonymous callers and 403 for
// authenticated non-admins.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := Principal(c)
		if !p.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
			c.Abort()
			return
		}
		if !p.IsAdmin() {
			c.JSON(http.StatusForbidden, response.Forbidden(""))
			c.Abort()
			return
		}
		c.Next()
	}
}
