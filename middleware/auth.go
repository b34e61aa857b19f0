package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"sigmaquiz/apierror"
	"sigmaquiz/models"
	"sigmaquiz/services"
)

const userKey = "currentUser"

// AuthRequired resolves the caller from the bearer token and loads the
// account so role checks see current state. Requests without a valid
// credential never reach the handler.
func AuthRequired(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Error(apierror.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Error(apierror.Unauthorized("Invalid authorization header format"))
			c.Abort()
			return
		}

		user, err := authService.UserFromToken(parts[1])
		if err != nil {
			c.Error(apierror.Unauthorized("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole gates an endpoint on the caller's role set.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.HasRole(role) {
			c.Error(apierror.Forbidden("Forbidden: " + role + " Only"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller, or nil outside an
// authenticated route.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
