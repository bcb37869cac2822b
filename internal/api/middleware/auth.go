package middleware

import (
	"collaband/CollaBand/internal/api/response"
	"collaband/CollaBand/internal/token"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key holding the authenticated user's id.
const userIDKey = "userID"

// TokenAuth validates the bearer token before any handler logic runs and
// stores the resolved user id in the request context. Both the "Token" and
// "Bearer" schemes are accepted.
func TokenAuth(tokens token.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication credentials were not provided")
			c.Abort()
			return
		}

		key, ok := extractKey(authHeader)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid authorization header")
			c.Abort()
			return
		}

		userID, err := tokens.Resolve(c.Request.Context(), key)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by TokenAuth.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

func extractKey(authHeader string) (string, bool) {
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(authHeader, scheme) {
			key := strings.TrimSpace(authHeader[len(scheme):])
			return key, key != ""
		}
	}
	return "", false
}
