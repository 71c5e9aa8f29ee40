// 邀请码生成：12 位 [A-Z0-9]，用于 /invite/{code} 链接
package invitecode

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Length 是邀请码的固定长度。历史上出现过带 FFORECAST- 前缀的变体，
	// 统一成 12 位纯随机后缀，校验端只认这一种格式。
	Length = 12

	// Alphabet 大写字母 + 数字，生成和查找都区分大小写
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// New 生成一个邀请码。底层用 crypto/rand（gonanoid），防枚举。
// 唯一性不在这里保证：由存储层的唯一索引兜底，冲突时调用方重新生成。
func New() (string, error) {
	code, err := gonanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("generate invite code: %w", err)
	}
	return code, nil
}

// MustNew 只在系统熵不可用时 panic，适合初始化和命令行工具。
func MustNew() string {
	code, err := New()
	if err != nil {
		panic(fmt.Sprintf("failed to generate invite code: %v", err))
	}
	return code
}

// Valid 检查字符串是否符合邀请码格式，不查库。
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
