package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/artistdash-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"
)

// AttachTraceContext runs after otelgin. The trace id comes from the caller's
// header, then the active span, then a fresh uuid.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		span := trace.SpanFromContext(ctx)

		td := &ctxutil.TraceData{
			RequestID: headerOr(c, headerRequestID, uuid.NewString),
			TraceID: headerOr(c, headerTraceID, func() string {
				if sc := span.SpanContext(); sc.HasTraceID() {
					return sc.TraceID().String()
				}
				return uuid.NewString()
			}),
		}
		span.SetAttributes(attribute.String("http.request_id", td.RequestID))

		c.Request = c.Request.WithContext(ctxutil.WithTraceData(ctx, td))
		c.Header(headerTraceID, td.TraceID)
		c.Header(headerRequestID, td.RequestID)
		c.Next()
	}
}

func headerOr(c *gin.Context, name string, fallback func() string) string {
	if v := strings.TrimSpace(c.GetHeader(name)); v != "" {
		return v
	}
	return fallback()
}
