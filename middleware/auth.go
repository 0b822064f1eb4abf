package middleware

import (
	"net/http"
	"strings"
	"vitrine/auth"

	"github.com/gin-gonic/gin"
)

// AdminEmailKey is the gin context key holding the authenticated
// admin's email after AuthRequired has run.
const AdminEmailKey = "adminEmail"

// AuthRequired rejects requests that do not carry a valid admin
// bearer token. The verified email is stored in the gin context for
// downstream handlers.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing token"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing token"})
			c.Abort()
			return
		}

		email, err := tokens.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			c.Abort()
			return
		}

		c.Set(AdminEmailKey, email)

		c.Next()
	}
}
