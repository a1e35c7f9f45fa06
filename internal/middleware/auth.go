package middleware

import (
	"net/http"
	"strings"

	"arportal/internal/auth"
	"arportal/internal/handlers"
	"arportal/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and plants the parsed claims in
// the gin context under handlers.ClaimsContextKey.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(handlers.ClaimsContextKey, claims)
		c.Next()
	}
}

// RequirePermission gates a route on the static role permission table.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(handlers.ClaimsContextKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, ok := val.(*auth.Claims)
		if !ok || !auth.HasPermission(claims.Role, permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			return
		}
		c.Next()
	}
}
