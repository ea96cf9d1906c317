package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUserKey = "auth_user_id"

// AuthOptional parses a bearer token when present and stashes the user id
// in the context. Dashboard reads stay accessible without a token; the
// identity, when available, only enriches logs and responses.
func AuthOptional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(strings.TrimSpace(raw), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["user_id"].(float64); ok {
				c.Set(authUserKey, int64(id))
			}
		}
		c.Next()
	}
}

// GetAuthUserID returns the authenticated user id, or 0 when anonymous.
func GetAuthUserID(c *gin.Context) int64 {
	if v, ok := c.Get(authUserKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
