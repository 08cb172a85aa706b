package middleware

import (
	"net/http"

	"altquery/internal/auth"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the cookie the session token travels in.
const TokenCookie = "token"

const userEmailKey = "user_email"

// RequireAuth rejects requests without a valid session cookie and stores the
// verified claim email in the context for the handler.
func RequireAuth(jwtm *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		claims, err := jwtm.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		c.Set(userEmailKey, claims.Email)
		c.Next()
	}
}

// CurrentEmail returns the authenticated identity set by RequireAuth,
// or "" on unprotected routes.
func CurrentEmail(c *gin.Context) string {
	if v, ok := c.Get(userEmailKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
