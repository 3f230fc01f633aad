package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/shared/auth"
	"resume-vault/internal/shared/server/respond"
)

const usernameKey = "username"

// Auth validates the Bearer token and stores the caller's identity in context.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "No token provided or invalid format. Use 'Bearer your.jwt.token'")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := tokens.Verify(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(usernameKey, claims.Username)
		c.Next()
	}
}

// UsernameFromContext fetches the username set by the Auth middleware.
func UsernameFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(usernameKey)
	if name, ok := val.(string); ok {
		return name
	}
	return ""
}
