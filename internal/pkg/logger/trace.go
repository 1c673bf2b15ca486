package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 请求链路标识在 Context 里的 Key
const TraceIDKey = "trace_id"

// ContextHandler 在每条日志上自动附加链路标识
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if traceID := TraceIDFrom(ctx); traceID != "" {
		r.AddAttrs(log.String("trace_id", traceID))
	}
	return h.Handler.Handle(ctx, r)
}

// TraceIDFrom 读取 Context 中的链路标识，没有则返回空串
func TraceIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}
