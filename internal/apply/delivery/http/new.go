package http

import (
	"github.com/gin-gonic/gin"

	"legal-practice-assistant/internal/apply"
	"legal-practice-assistant/pkg/log"
)

// Handler is the public interface for the apply HTTP delivery layer.
type Handler interface {
	Apply(c *gin.Context)
	Activity(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc apply.UseCase
}

// New creates a new HTTP handler for the apply domain.
func New(l log.Logger, uc apply.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
