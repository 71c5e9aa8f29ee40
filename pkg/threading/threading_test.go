package threading

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestGo_DetachesCallerCancel(t *testing.T) {
	type testKey string
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), testKey("k"), "v"))

	th := New()
	var ran int64
	th.Go(ctx, func(inner context.Context) {
		// value 保留
		if v, ok := inner.Value(testKey("k")).(string); !ok || v != "v" {
			t.Error("context value lost")
		}
		// 调用方 cancel 不影响受管任务
		cancel()
		select {
		case <-inner.Done():
			t.Error("inner ctx canceled by caller cancel")
		case <-time.After(20 * time.Millisecond):
		}
		atomic.AddInt64(&ran, 1)
	})
	th.Stop(true, time.Second)
	if atomic.LoadInt64(&ran) != 1 {
		t.Fatal("task did not run")
	}
}

func TestStop_WaitsForTasks(t *testing.T) {
	th := New()
	var count int64
	for i := 0; i < 3; i++ {
		th.Go(context.Background(), func(ctx context.Context) {
			time.Sleep(30 * time.Millisecond)
			atomic.AddInt64(&count, 1)
		})
	}
	th.Stop(true, time.Second)
	if atomic.LoadInt64(&count) != 3 {
		t.Fatalf("expected 3 tasks done, got %d", count)
	}
}

func TestStop_TimeoutCancelsRemaining(t *testing.T) {
	th := New()
	canceled := make(chan struct{})
	th.Go(context.Background(), func(ctx context.Context) {
		select {
		case <-ctx.Done():
			close(canceled)
		case <-time.After(5 * time.Second):
		}
	})
	th.Stop(true, 30*time.Millisecond)
	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("task was not canceled after stop timeout")
	}
}

func TestGo_AfterStopPanics(t *testing.T) {
	th := New()
	th.Stop(false, 0)

	defer func() {
		if err := recover(); err != ErrStopped {
			t.Fatalf("expected ErrStopped panic, got %v", err)
		}
	}()
	th.Go(context.Background(), func(ctx context.Context) {})
}

func TestGo_PanicRecovered(t *testing.T) {
	th := New()
	got := make(chan interface{}, 1)
	th.Go(context.Background(), func(ctx context.Context) {
		panic("boom")
	}, func(ctx context.Context, err interface{}) {
		got <- err
	})
	th.Stop(true, time.Second)
	select {
	case err := <-got:
		if err != "boom" {
			t.Fatalf("unexpected panic value: %v", err)
		}
	default:
		t.Fatal("panic func not called")
	}
}

func TestDefaultThreading(t *testing.T) {
	cleanup := Init()
	// defer 是 LIFO：先执行 cleanup()，再把全局复位
	defer func() { defaultThreading = nil }()
	defer cleanup()

	done := make(chan struct{})
	Go(context.Background(), func(ctx context.Context) {
		close(done)
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("default Go did not run")
	}
}

func TestDefaultThreading_CleanupSurvivesGlobalReset(t *testing.T) {
	cleanup := Init()

	done := make(chan struct{})
	Go(context.Background(), func(ctx context.Context) {
		close(done)
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("default Go did not run")
	}

	// cleanup 的收尾不依赖全局变量，复位顺序错了也不能崩
	defaultThreading = nil
	cleanup()
}
