package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jardam/internal/utils"
)

const AdminHeader = "x-admin-key"

// AdminKey marks the request as admin when it carries the configured key in
// the x-admin-key header or the adminKey query parameter. An empty key
// disables admin access entirely.
func AdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key != "" {
			sent := c.GetHeader(AdminHeader)
			if sent == "" {
				sent = c.Query("adminKey")
			}
			if subtle.ConstantTimeCompare([]byte(sent), []byte(key)) == 1 {
				c.Set(ctxIsAdmin, true)
			}
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
				"code":    utils.CodeUnauthorized,
			})
			return
		}
		c.Next()
	}
}
