package middleware

import (
	"github.com/gin-gonic/gin"

	"lockfocus-assistant/pkg/response"
)

// Recovery turns a handler panic into a logged 500 response.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic recovered: %v", recovered)
		response.InternalError(c, nil)
		c.Abort()
	})
}
