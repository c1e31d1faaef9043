package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "chat.delivery.processChatReq: %v", err)
		return req, errMessageRequired
	}
	return req, nil
}

// processSessionID reads the session id path parameter.
func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errSessionIDRequired
	}
	return id, nil
}
