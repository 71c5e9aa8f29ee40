// 日志输出，支持颜色
package logger

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/jwalton/gchalk"
	"github.com/jwalton/go-supportscolor"
)

var _ log.Logger = (*colorLogger)(nil)

// colorLogger 终端下彩色 kv 输出，非终端（线上）落 json。
// 可以被多个 goroutine 并发使用。
type colorLogger struct {
	w         io.Writer
	debug     bool
	skipEmpty bool
	isDiscard bool
	mu        sync.Mutex
	pool      *sync.Pool
}

// NewColorLogger 带颜色输出的 logger。skipEmpty 为 true 时空值字段不输出。
func NewColorLogger(w io.Writer, skipEmpty, debug bool) log.Logger {
	return &colorLogger{
		w:         w,
		debug:     debug,
		skipEmpty: skipEmpty,
		isDiscard: w == io.Discard,
		pool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

// Log print the kv pairs log.
func (l *colorLogger) Log(level log.Level, keyvals ...interface{}) error {
	if level == log.LevelDebug && !l.debug {
		return nil
	}
	if l.isDiscard || len(keyvals) == 0 {
		return nil
	}
	if (len(keyvals) & 1) == 1 {
		keyvals = append(keyvals, "KEYVALS UNPAIRED")
	}

	// writer 不支持颜色输出（线上环境），直接输出 json
	if w, ok := l.w.(*os.File); !ok || supportscolor.SupportsColor(w.Fd()).Level == gchalk.LevelNone {
		testMode := flag.Lookup("test.v") != nil // 单元测试环境保持 kv 输出
		if !testMode {
			return l.jsonOutput(level, keyvals...)
		}
	}

	buf := l.pool.Get().(*bytes.Buffer)
	defer l.pool.Put(buf)

	title := level.String()
	color := func(str ...string) string { return gchalk.Gray(str...) }
	switch level {
	case log.LevelDebug:
		title = gchalk.Green(title)
		color = gchalk.Green
	case log.LevelInfo:
		title = gchalk.Blue(title)
		color = gchalk.Blue
	case log.LevelWarn:
		title = gchalk.Yellow(title)
		color = gchalk.Yellow
	case log.LevelError, log.LevelFatal:
		title = gchalk.BgBrightRed(title)
		color = gchalk.BgBrightRed
	}
	buf.WriteString(color(title))

	for i := 0; i < len(keyvals); i += 2 {
		k := fmt.Sprintf("%s", keyvals[i])
		v := fmt.Sprintf("%v", keyvals[i+1])

		if l.skipEmpty && v == "" {
			continue
		}

		// caller 字段加个空格，方便编辑器点击跳转
		if l.debug && k == "caller" {
			v = " " + v
		}

		_, _ = fmt.Fprintf(buf, " %s%s%v", gchalk.Gray(k), gchalk.Gray("="), v)
	}
	buf.WriteByte('\n')
	defer buf.Reset()

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.w.Write(buf.Bytes())
	return err
}

func (l *colorLogger) jsonOutput(level log.Level, keyvals ...interface{}) error {
	param := map[string]interface{}{"level": level.String()}
	for i := 0; i < len(keyvals); i += 2 {
		k := fmt.Sprintf("%v", keyvals[i])
		param[k] = keyvals[i+1]
	}
	data, err := json.Marshal(&param)
	if err != nil {
		return err
	}
	if _, err = l.w.Write(data); err != nil {
		return err
	}
	_, err = l.w.Write([]byte("\n"))
	return err
}

func (l *colorLogger) Close() error {
	return nil
}
