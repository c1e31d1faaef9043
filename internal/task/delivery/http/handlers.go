package http

import (
	"github.com/gin-gonic/gin"

	"lockfocus-assistant/pkg/response"
)

// ParseTasks godoc
// @Summary     Extract tasks from a message
// @Description Runs task extraction on a message and returns the tasks, their priority buckets and the Markdown summary.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Message to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/test/parse-tasks [POST]
func (h *handler) ParseTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}
