// 管理临时异步任务（通知推送等），进程退出时统一收尾
package threading

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

var ErrStopped = errors.New("ErrStopped")

type Threading struct {
	mu      sync.Mutex
	wait    sync.WaitGroup
	stopped bool
	running map[context.Context]context.CancelFunc
}

func New() *Threading {
	return &Threading{
		running: make(map[context.Context]context.CancelFunc),
	}
}

func DefaultPanicFunc(ctx context.Context, err interface{}) {
	buf := make([]byte, 10240)
	n := runtime.Stack(buf, false)
	log.WithContext(ctx, log.GetLogger()).Log(log.LevelError,
		"msg", fmt.Sprintf("stack: %v\n%s", err, buf[:n]))
}

// Go 启动一个受管 goroutine。
//
// run 拿到的 ctx 脱离了调用方的 cancel（value 保留），
// 但挂在 Threading 自己的 cancel 上，Stop 时可以统一取消。
func (t *Threading) Go(ctx context.Context, run func(ctx context.Context), panicFunc ...func(ctx context.Context, err interface{})) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		panic(ErrStopped)
	}
	detached := context.WithoutCancel(ctx)
	runCtx, cancel := context.WithCancel(detached)
	t.running[runCtx] = cancel
	t.mu.Unlock()

	t.wait.Add(1)
	go func() {
		defer t.wait.Done()
		defer func() {
			t.mu.Lock()
			delete(t.running, runCtx)
			t.mu.Unlock()
		}()
		defer func() {
			if err := recover(); err != nil {
				pf := []func(context.Context, interface{}){DefaultPanicFunc}
				if len(panicFunc) > 0 {
					pf = panicFunc
				}
				for _, f := range pf {
					f(runCtx, err)
				}
			}
		}()

		run(runCtx)
	}()
}

// Stop 进程退出前调用。
// wait 为 true 时最多等 timeout，超时后取消还没跑完的任务。
func (t *Threading) Stop(wait bool, timeout time.Duration) {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()

	if wait {
		done := make(chan struct{})
		go func() {
			t.wait.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(timeout):
		}
	}

	t.mu.Lock()
	for _, cancel := range t.running {
		cancel()
	}
	t.mu.Unlock()
}
