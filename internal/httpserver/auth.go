package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key carrying the authenticated user ID.
const userIDKey = "userID"

// authMiddleware resolves the Authorization header into an opaque user
// identifier and aborts with 401 when it cannot.
func authMiddleware(verifier tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
				Error:   "Unauthorized",
				Message: "Missing or invalid Authorization header. Expected format: Bearer <token>",
			})
			return
		}

		userID, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
				Error:   "Unauthorized",
				Message: "Invalid or malformed token",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
