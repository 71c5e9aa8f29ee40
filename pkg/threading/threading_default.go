package threading

import (
	"context"
	"errors"
	"time"
)

var errRepeatedInit = errors.New("errRepeatedInit")
var defaultThreading *Threading

// 程序退出时，留 30s 处理还没完成的后台任务（通知等）
const defaultStopTimeout = time.Second * 30

func Init() func() {
	if defaultThreading != nil {
		panic(errRepeatedInit)
	}
	th := New()
	defaultThreading = th
	// cleanup 持有自己的实例，全局变量被外部重置也不影响收尾
	return func() {
		th.Stop(true, defaultStopTimeout)
	}
}

// Go 挂到默认 Threading 上，Init 必须先调用
func Go(ctx context.Context, run func(ctx context.Context), panicFunc ...func(ctx context.Context, err interface{})) {
	defaultThreading.Go(ctx, run, panicFunc...)
}
