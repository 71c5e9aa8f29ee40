package logger

import (
	"context"
	"os"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/tracing"
)

type inviteCodeKey struct{}

func NewDefaultLogger(id, name, version string, debug bool) log.Logger {
	return log.With(NewColorLogger(os.Stdout, true, debug),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", name,
		"service.version", version,
		"trace.id", tracing.TraceID(),
		"span.id", tracing.SpanID(),
		"invite.code", InviteCode(),
	)
}

// 用于测试的 logger
func NewDefaultLoggerForTest() log.Logger {
	return NewDefaultLogger("test-id", "test", "test-version", true)
}

// InviteCode 自动输出当前处理的邀请码，没有就留空（skipEmpty 下不显示）
func InviteCode() log.Valuer {
	return func(ctx context.Context) interface{} {
		v, ok := ctx.Value(inviteCodeKey{}).(string)
		if !ok {
			return ""
		}
		return v
	}
}

// WithInviteCode 把正在处理的邀请码挂到 ctx，贯穿校验/兑换全链路日志
func WithInviteCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, inviteCodeKey{}, code)
}
