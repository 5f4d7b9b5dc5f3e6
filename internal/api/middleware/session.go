package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/jardam/internal/services"
	"github.com/yoockh/jardam/internal/utils"
)

const SessionHeader = "x-session-token"

func sessionToken(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader(SessionHeader)); t != "" {
		return t
	}
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// SessionAuth resolves the session token when one is sent. It never rejects
// a request: unknown tokens and lookup failures leave it anonymous.
func SessionAuth(sessions services.SessionService, l logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			l.WithError(err).Warn("session lookup failed")
		}
		if sess != nil {
			c.Set(ctxUserID, sess.UserID)
		}
		c.Next()
	}
}

func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
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
