package invitecode

import (
	"strings"
	"testing"
)

func TestNew_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := New()
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if len(code) != Length {
			t.Fatalf("expected length %d, got %d (%s)", Length, len(code), code)
		}
		for _, c := range code {
			if !strings.ContainsRune(Alphabet, c) {
				t.Fatalf("unexpected char %q in code %s", c, code)
			}
		}
		if !Valid(code) {
			t.Fatalf("generated code should be valid: %s", code)
		}
	}
}

func TestNew_NoCollisions(t *testing.T) {
	// 10000 个码不应该出现碰撞（36^12 的空间）
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		code, err := New()
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if _, ok := seen[code]; ok {
			t.Fatalf("collision after %d codes: %s", i, code)
		}
		seen[code] = struct{}{}
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"ABCDEF123456", true},
		{"000000000000", true},
		{"abcdef123456", false}, // 小写不认
		{"ABCDEF12345", false},  // 太短
		{"ABCDEF1234567", false},
		{"FFORECAST-AB", false}, // 旧版前缀格式
		{"", false},
	}
	for _, c := range cases {
		if got := Valid(c.code); got != c.want {
			t.Fatalf("Valid(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestMustNew(t *testing.T) {
	code := MustNew()
	if !Valid(code) {
		t.Fatalf("MustNew returned invalid code: %s", code)
	}
}
