package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "lockfocus-assistant/internal/chat/delivery/http"
	taskHTTP "lockfocus-assistant/internal/task/delivery/http"
)

// setupChatDomain registers /api/health, /api/rules and /api/chat.
func (srv HTTPServer) setupChatDomain(api *gin.RouterGroup) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h)

	srv.l.Infof(context.Background(), "Chat domain registered")
}

// setupTaskDomain registers /api/test/parse-tasks.
func (srv HTTPServer) setupTaskDomain(api *gin.RouterGroup) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(context.Background(), "Task domain registered")
}
