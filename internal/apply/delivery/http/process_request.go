package http

import (
	"github.com/gin-gonic/gin"
)

// processApplyReq binds and validates the apply request body.
func (h *handler) processApplyReq(c *gin.Context) (applyReq, error) {
	var req applyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processActivityReq binds the activity query parameters.
func (h *handler) processActivityReq(c *gin.Context) (activityReq, error) {
	var req activityReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
