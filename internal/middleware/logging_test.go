package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"assistant-trigger/internal/middleware"
	"assistant-trigger/pkg/log"
)

type recordingLogger struct {
	mu     sync.Mutex
	levels []string
	lines  []string
	ctxs   []context.Context
}

func (r *recordingLogger) record(ctx context.Context, level, template string, arg ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels = append(r.levels, level)
	r.lines = append(r.lines, fmt.Sprintf(template, arg...))
	r.ctxs = append(r.ctxs, ctx)
}

func (r *recordingLogger) Debug(ctx context.Context, arg ...any) {}
func (r *recordingLogger) Debugf(ctx context.Context, template string, arg ...any) {
	r.record(ctx, "debug", template, arg...)
}
func (r *recordingLogger) Info(ctx context.Context, arg ...any) {}
func (r *recordingLogger) Infof(ctx context.Context, template string, arg ...any) {
	r.record(ctx, "info", template, arg...)
}
func (r *recordingLogger) Warn(ctx context.Context, arg ...any) {}
func (r *recordingLogger) Warnf(ctx context.Context, template string, arg ...any) {
	r.record(ctx, "warn", template, arg...)
}
func (r *recordingLogger) Error(ctx context.Context, arg ...any) {}
func (r *recordingLogger) Errorf(ctx context.Context, template string, arg ...any) {
	r.record(ctx, "error", template, arg...)
}
func (r *recordingLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (r *recordingLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (r *recordingLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (r *recordingLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (r *recordingLogger) Panic(ctx context.Context, arg ...any)                    {}
func (r *recordingLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tcs := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "debug"},
		{http.StatusUnauthorized, "warn"},
		{http.StatusServiceUnavailable, "error"},
	}

	for _, tc := range tcs {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			l := &recordingLogger{}
			r := gin.New()
			r.Use(middleware.New(l).Logging())
			r.POST("/webhook", func(c *gin.Context) { c.Status(tc.status) })

			req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
			req.Header.Set("X-Gitlab-Event-UUID", "uuid-1")
			r.ServeHTTP(httptest.NewRecorder(), req)

			if len(l.levels) != 1 || l.levels[0] != tc.level {
				t.Fatalf("expected one %s line, got %v", tc.level, l.levels)
			}
			if got, _ := l.ctxs[0].Value(log.DeliveryIDKey).(string); got != "uuid-1" {
				t.Errorf("delivery id not on context: %q", got)
			}
		})
	}
}
