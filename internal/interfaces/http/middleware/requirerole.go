package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faena-hq/faena/internal/domain/user"
	"github.com/faena-hq/faena/internal/shared/constants"
	"github.com/faena-hq/faena/internal/shared/utils"
)

// RequireWriteAccess refuses roster mutations from read-only roles.
// Must run after RequireAuth.
func RequireWriteAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated role")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || !user.Role(role).CanWrite() {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin restricts an endpoint to administrators.
// Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated role")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || user.Role(role) != user.RoleAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
