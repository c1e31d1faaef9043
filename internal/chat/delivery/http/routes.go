package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat routes onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/health", h.Health)
	rg.GET("/status", h.Status)
	rg.GET("/rules", h.Rules)
	rg.DELETE("/history", h.ClearHistory)

	chat := rg.Group("/chat")
	{
		chat.POST("", h.Chat)
		chat.GET("/sessions/:id/memory", h.Memory)
		chat.DELETE("/sessions/:id", h.ClearSession)
	}
}
