package http

import (
	"github.com/gin-gonic/gin"

	"legal-practice-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/actions/apply", mw.RateLimit(), h.Apply)
	rg.GET("/actions/audit", h.Activity)
}
