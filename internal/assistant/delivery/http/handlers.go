package http

import (
	"github.com/gin-gonic/gin"

	"legal-practice-assistant/pkg/response"
)

// ProcessMessage godoc
// @Summary     Parse an assistant command
// @Description Parses one free-text command into proposed actions plus a rendered reply. Nothing is persisted.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string            false "Acting user ID"
// @Param       body      body   processMessageReq true  "Command message"
// @Success     200 {object} processMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/message [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ProcessMessage(ctx, req.toScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessMessageResp(output))
}
