package middleware

import (
	"log"
	"net/http"
	"strings"

	"pos_backend/internal/auth"
	"pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Authenticate verifies the bearer token, rejects revoked tokens, and puts
// the resolved identity into the request context for downstream handlers.
func Authenticate(tokens *auth.Manager, denylist services.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			unauthorized(c, "Missing or invalid authorization header")
			return
		}
		token := strings.TrimPrefix(header, bearerPrefix)

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		if denylist != nil {
			revoked, err := denylist.IsTokenRevoked(c.Request.Context(), token)
			if err != nil {
				log.Printf("token denylist check failed: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status":     http.StatusText(http.StatusInternalServerError),
					"statusCode": http.StatusInternalServerError,
					"msg":        "something went wrong",
					"data":       nil,
				})
				return
			}
			if revoked {
				unauthorized(c, "Token has been revoked")
				return
			}
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":     http.StatusText(http.StatusUnauthorized),
		"statusCode": http.StatusUnauthorized,
		"msg":        msg,
		"data":       nil,
	})
}
