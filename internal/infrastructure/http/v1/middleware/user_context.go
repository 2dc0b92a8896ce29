package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "procura/internal/core/context"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
)

// UserContext extracts caller identity forwarded by the authenticating
// gateway and adds it to the request context. Authentication itself happens
// upstream; this service only records who acted for audit purposes.
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID != "" {
			user := &appctx.UserContext{
				UserID: userID,
				Email:  c.GetHeader(HeaderUserEmail),
			}
			ctx := appctx.WithUser(c.Request.Context(), user)
			c.Request = c.Request.WithContext(ctx)
			c.Set("user_id", userID)
		}
		c.Next()
	}
}
