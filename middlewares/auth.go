package middlewares

import (
	"strings"

	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

// Identify stores the token's username in the context when a valid bearer
// token is present. It never rejects a request.
func Identify(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := BearerToken(c); tok != "" {
			if claims, err := utils.ParseToken(tok, secret); err == nil {
				c.Set(utils.CtxUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// BearerToken reads the Authorization header, then the token query parameter
// that browser websocket clients use since they cannot set headers.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return strings.TrimSpace(c.Query("token"))
	}
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
