package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	applyHTTP "legal-practice-assistant/internal/apply/delivery/http"
	assistantHTTP "legal-practice-assistant/internal/assistant/delivery/http"
	"legal-practice-assistant/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	assistant := api.Group("/assistant")

	assistantHTTP.RegisterRoutes(assistant, srv.assistantHandler, srv.mw)
	srv.l.Infof(ctx, "Assistant routes registered at POST /api/v1/assistant/message")

	if srv.applyHandler != nil {
		applyHTTP.RegisterRoutes(assistant, srv.applyHandler, srv.mw)
		srv.l.Infof(ctx, "Apply routes registered at POST /api/v1/assistant/actions/apply")
	} else {
		srv.l.Infof(ctx, "Apply handler not configured, skipping apply route")
	}

	return nil
}
