package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "assistant-trigger"
)

func (srv *HTTPServer) healthCheck(c *gin.Context) {
	srv.status(c, "healthy")
}

// readyCheck returns ready once routes are mapped.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.webhookHandler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": ServiceName})
		return
	}
	srv.status(c, "ready")
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}

func (srv *HTTPServer) status(c *gin.Context, status string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
