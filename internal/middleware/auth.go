package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/8180e/personal-finance-dashboard/internal/models"
	"github.com/8180e/personal-finance-dashboard/internal/token"
)

const userContextKey = "authUser"

// Auth verifies the Bearer token on the request and stores the recovered
// public user in the gin context. The token service is injected so the
// signing secret stays explicit configuration rather than a global.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			RespondWithError(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			RespondWithError(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		user, err := tokens.Verify(parts[1])
		if err != nil {
			RespondWithError(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// SetCurrentUser stores the authenticated user in the gin context.
// Exposed for handler tests that bypass token verification.
func SetCurrentUser(c *gin.Context, user models.PublicUser) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the authenticated user stored by Auth.
func CurrentUser(c *gin.Context) (models.PublicUser, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return models.PublicUser{}, false
	}
	user, ok := v.(models.PublicUser)
	return user, ok
}
