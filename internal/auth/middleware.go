package auth

import (
	"net/http"
	"strings"

	"boardshelf/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// OwnerMiddleware requires a valid owner bearer token. When enabled is false
// (no owner password configured) every request passes through.
func OwnerMiddleware(secret string, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		sub, err := jwt.ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("subject", sub)
		c.Next()
	}
}
