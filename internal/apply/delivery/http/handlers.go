package http

import (
	"github.com/gin-gonic/gin"

	"legal-practice-assistant/pkg/response"
)

// Apply godoc
// @Summary     Apply confirmed actions
// @Description Executes a list of human-confirmed proposed actions. Each action is applied or skipped independently.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   false "Acting user ID"
// @Param       body      body   applyReq true  "Confirmed actions"
// @Success     200 {object} applyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/actions/apply [POST]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Apply(ctx, req.toScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Apply: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newApplyResp(output))
}

// Activity godoc
// @Summary     List recent activity
// @Description Returns the newest audit entries, most recent first.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       limit query int false "Max entries (default: 50)"
// @Success     200 {object} activityResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/actions/audit [GET]
func (h *handler) Activity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processActivityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RecentActivity(ctx, req.toScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RecentActivity: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newActivityResp(output))
}
