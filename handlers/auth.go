package handlers

import (
	"log"
	"net/http"
	"vitrine/auth"
	"vitrine/models"

	"github.com/gin-gonic/gin"
)

// Login checks the submitted pair against the configured admin
// credentials and issues a session token on match.
func Login(creds auth.Credentials, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email and password are required"})
			return
		}

		if !creds.Check(req.Email, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
			return
		}

		token, err := tokens.Issue(req.Email)
		if err != nil {
			log.Printf("Login: failed to issue token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
	}
}
