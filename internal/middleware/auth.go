package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vkclicks/vkclicks-api/internal/models"
)

const (
	ContextUserID    = "userID"
	ContextUsername  = "username"
	ContextUserEmail = "userEmail"
)

// AuthMiddleware resolves the opaque bearer token issued at
// signup/login. Both "Token <key>" and "Bearer <key>" are accepted.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 ||
			(!strings.EqualFold(parts[0], "Token") && !strings.EqualFold(parts[0], "Bearer")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		key := strings.TrimSpace(parts[1])

		var token models.AuthToken
		if err := db.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextUserID, token.UserID)
		c.Set(ContextUsername, token.User.Username)
		c.Set(ContextUserEmail, token.User.Email)

		c.Next()
	}
}
