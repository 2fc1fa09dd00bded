package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain"
	"backoffice/internal/services"
)

const sessionKey = "session"

// Auth memvalidasi bearer token dan menaruh sesi user di context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "token tidak ada",
				"request_id": GetRequestID(c),
			})
			return
		}

		sess, err := services.AuthService{}.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "token tidak valid",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireRoles membatasi endpoint ke role tertentu. Dipasang setelah Auth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := map[string]bool{}
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		sess := GetSession(c)
		if !sess.Valid() || !allowed[sess.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "akses ditolak",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

// GetSession mengambil sesi user dari context; kosong kalau belum login.
func GetSession(c *gin.Context) domain.Session {
	if c == nil {
		return domain.Session{}
	}
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(domain.Session); ok {
			return s
		}
	}
	return domain.Session{}
}
