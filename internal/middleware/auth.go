package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"routing-demo/internal/auth"
)

const identityContextKey = "identity"

func IdentityFromContext(c *gin.Context) (auth.Identity, bool) {
	value, ok := c.Get(identityContextKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.FromAuthorizationHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// RequireAdmin implies RequireAuth: an unauthenticated caller gets 401, an
// authenticated non-admin gets 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.FromAuthorizationHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !identity.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set(identityContextKey, identity)
		c.Next()
	}
}
