package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-platform/internal/logger"
	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/justsurfingit/job-platform/internal/services"
)

const (
	ContextUserEmail = "user_email"
	ContextUserName  = "user_name"
	ContextUserRole  = "user_role"
)

type TokenParser interface {
	Parse(token string) (*services.Claims, error)
}

// AuthRequired accepts a Bearer token and stores the caller's identity on the
// gin context.
func AuthRequired(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No token provided"})
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			logger.Warn("AuthRequired", "invalid token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid or expired token"})
			return
		}

		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserName, claims.Name)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// RequireRole must run after AuthRequired.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

func CallerEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}

func CallerRole(c *gin.Context) models.Role {
	role, _ := c.Get(ContextUserRole)
	r, _ := role.(models.Role)
	return r
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
