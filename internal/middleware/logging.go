package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"assistant-trigger/pkg/log"
)

const headerDelivery = "X-Gitlab-Event-UUID"

// Logging logs one line per request. Server errors are logged at error
// level, client errors at warn.
func (mw Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		if id := c.GetHeader(headerDelivery); id != "" {
			ctx = context.WithValue(ctx, log.DeliveryIDKey, id)
		}

		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			mw.l.Debugf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
