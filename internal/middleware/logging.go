package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "http: %s %s status=%d latency=%s ip=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP())
		case status >= 400:
			m.l.Warnf(ctx, "http: %s %s status=%d latency=%s ip=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP())
		default:
			m.l.Infof(ctx, "http: %s %s status=%d latency=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		}
	}
}
