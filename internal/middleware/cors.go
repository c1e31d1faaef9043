package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS applies the configured CORS policy and answers preflight requests.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.cors.HandlerFunc(c.Writer, c.Request)

		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
