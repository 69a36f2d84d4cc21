package ctxutil

import (
	"context"

	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
)

type traceDataKey struct{}

type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	val := ctx.Value(traceDataKey{})
	if td, ok := val.(*TraceData); ok {
		return td
	}
	return nil
}

type requestDataKey struct{}

// RequestData is attached by the auth middleware. Handlers read the capability
// from it and pass it on explicitly; services never look it up themselves.
type RequestData struct {
	TokenID    string
	ExpiresAt  int64
	Capability authz.Capability
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// Capability returns the caller capability, or the zero value when unauthenticated.
func Capability(ctx context.Context) authz.Capability {
	if rd := GetRequestData(ctx); rd != nil {
		return rd.Capability
	}
	return authz.Capability{}
}
