package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the task debugging routes onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	test := rg.Group("/test")
	{
		test.POST("/parse-tasks", h.ParseTasks)
	}
}
