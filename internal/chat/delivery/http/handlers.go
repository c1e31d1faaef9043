package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"lockfocus-assistant/internal/chat"
	"lockfocus-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Answers a message using the safety net, the rule set, task extraction and the Gemini model when configured.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional session id"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// ClearSession godoc
// @Summary     Clear a chat session
// @Description Drops the stored conversation history of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/chat/sessions/{id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.ClearSession(ctx, id)
	response.OK(c, nil)
}

// Rules godoc
// @Summary     Rule set summary
// @Description Returns the number of loaded rules and the count per category.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} rulesResp
// @Router      /api/rules [GET]
func (h *handler) Rules(c *gin.Context) {
	response.OK(c, h.newRulesResp(h.uc.Rules(c.Request.Context())))
}

// Health godoc
// @Summary     Assistant health
// @Description Reports whether the Gemini model is configured.
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /api/health [GET]
func (h *handler) Health(c *gin.Context) {
	available := h.uc.Available(c.Request.Context())
	response.OK(c, h.newHealthResp(available, time.Now()))
}

// Status godoc
// @Summary     Assistant status
// @Description Reports the configured model, whether it is reachable and whether the memory store is enabled.
// @Tags        Health
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}

// ClearHistory godoc
// @Summary     Clear the default session
// @Description Drops the history, readings and memory of the default session.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} clearHistoryResp
// @Router      /api/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	h.uc.ClearSession(c.Request.Context(), chat.DefaultSessionID)
	response.OK(c, clearHistoryResp{Status: statusCleared, Message: historyClearedMessage})
}

// Memory godoc
// @Summary     Session memory
// @Description Returns the readiness readings, remembered patterns and synced tasks of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} memoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/sessions/{id}/memory [GET]
func (h *handler) Memory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Memory(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Memory: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMemoryResp(output))
}
