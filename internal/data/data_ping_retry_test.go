// server/internal/data/data_ping_retry_test.go
package data

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

// scriptedDB 按脚本返回 ping 结果，脚本走完以后一直可用（或一直失败）
type scriptedDB struct {
	mu    sync.Mutex
	fails int // 前 fails 次返回错误
	err   error
	pings int
}

func (db *scriptedDB) PingContext(_ context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.pings++
	if db.pings <= db.fails {
		return db.err
	}
	return nil
}

func (db *scriptedDB) Pings() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.pings
}

func discardHelper() *log.Helper {
	return log.NewHelper(log.NewStdLogger(io.Discard))
}

func TestWaitForMySQLReady_ImmediatelyUp(t *testing.T) {
	db := &scriptedDB{}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := waitForMySQLReady(ctx, db, 10*time.Millisecond, discardHelper()); err != nil {
		t.Fatalf("ready db must not error: %v", err)
	}
	if got := db.Pings(); got != 1 {
		t.Fatalf("pings = %d, want 1", got)
	}
}

func TestWaitForMySQLReady_ContainerComesUpLate(t *testing.T) {
	// 模拟 compose 里 mysql 晚两拍才起来
	db := &scriptedDB{fails: 2, err: errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := waitForMySQLReady(ctx, db, 5*time.Millisecond, discardHelper()); err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if got := db.Pings(); got != 3 {
		t.Fatalf("pings = %d, want 3", got)
	}
}

func TestWaitForMySQLReady_GivesUpOnDeadline(t *testing.T) {
	db := &scriptedDB{fails: 1 << 30, err: errors.New("connection refused")}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := waitForMySQLReady(ctx, db, 8*time.Millisecond, discardHelper())
	if err == nil {
		t.Fatal("expected error after deadline")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error must wrap the context cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("error should carry the last ping failure, got %v", err)
	}
	if got := db.Pings(); got < 2 {
		t.Fatalf("pings = %d, want at least 2", got)
	}
}
