package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/artistdash-backend/internal/platform/ctxutil"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

// RequestLogger writes one access line per request. The level follows the
// status class; 5xx lines carry the last handler error.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := accessFields(c, time.Since(start))
		switch {
		case status >= 500:
			if err := c.Errors.Last(); err != nil {
				fields = append(fields, "error", err.Err)
			}
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}

func accessFields(c *gin.Context, elapsed time.Duration) []interface{} {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	fields := []interface{}{
		"method", c.Request.Method,
		"route", route,
		"status", c.Writer.Status(),
		"bytes", c.Writer.Size(),
		"client_ip", c.ClientIP(),
		"elapsed_ms", elapsed.Milliseconds(),
	}

	ctx := c.Request.Context()
	if td := ctxutil.GetTraceData(ctx); td != nil {
		fields = append(fields, "request_id", td.RequestID, "trace_id", td.TraceID)
	}
	if rd := ctxutil.GetRequestData(ctx); rd != nil && rd.Capability.Authenticated() {
		fields = append(fields, "user_id", rd.Capability.UserID, "role", string(rd.Capability.Role))
	}
	return fields
}
