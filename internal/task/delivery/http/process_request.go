package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.processParseReq: %v", err)
		return req, errMessageRequired
	}
	return req, nil
}
