package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"planner/internal/auth"
)

// UserIDKey is the gin context key under which the authenticated owner
// identity is stored, as an opaque string.
const UserIDKey = "userID"

// JWTAuthMiddleware rejects requests without a valid bearer token and places
// the token's owner identity in the request context. It verifies against the
// same TokenManager that mints tokens on register and login.
func JWTAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
