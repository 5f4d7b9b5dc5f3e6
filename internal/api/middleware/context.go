package middleware

import "github.com/gin-gonic/gin"

const (
	ctxUserID  = "user_id"
	ctxIsAdmin = "is_admin"
)

// UserID is the id of the account behind the request's session token.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxIsAdmin)
}
