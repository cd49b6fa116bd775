package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"assistant-trigger/internal/middleware"
	"assistant-trigger/internal/model"
)

func (srv *HTTPServer) mapHandlers(mw middleware.Middleware) {
	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.Logging())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers the GitLab routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.webhookHandler == nil {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping webhook routes")
		return
	}
	srv.gin.POST("/webhook", srv.webhookHandler.HandleWebhook)
	srv.gin.POST("/trigger", srv.webhookHandler.HandleManualTrigger)
	srv.l.Infof(ctx, "Webhook routes registered at POST /webhook and POST /trigger")
}
