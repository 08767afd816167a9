// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"beautybook/pkg/auth"
	"beautybook/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the context key the authenticated user's id is stored under.
const UserIDKey = "userID"

// Auth returns a middleware that validates bearer tokens and attaches the
// authenticated user's id to the request context. Token issuance happens
// outside this service; this is the identity boundary the handlers rely on.
func Auth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's id from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}
