package http

import (
	"github.com/gin-gonic/gin"
)

// processMessageReq binds and validates the process message request body.
func (h *handler) processMessageReq(c *gin.Context) (processMessageReq, error) {
	var req processMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
