package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adityapw/user_management_app/internal/core/domain"
)

// Authorize allows only the given roles through. It must run after
// AuthMiddleware.
func Authorize(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUserFromCtx(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You don't have permission to access this resource"})
	}
}

// AuthorizeAdmin restricts a route to ADMIN users.
func AuthorizeAdmin() gin.HandlerFunc {
	return Authorize(domain.RoleAdmin)
}

// AuthorizeAll allows any authenticated user.
func AuthorizeAll() gin.HandlerFunc {
	return Authorize(domain.RoleUser, domain.RoleAdmin)
}
