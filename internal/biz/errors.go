package biz

import "errors"

// 错误分类层：data 层把驱动/ent 的原始错误翻译成这些语义化错误，
// service/view 层只认这里的哨兵，不碰原始错误码。
var (
	// 邀请生命周期
	ErrInviteNotFound    = errors.New("invite not found")
	ErrInviteExpired     = errors.New("invite expired")
	ErrInviteAlreadyUsed = errors.New("invite already used")
	ErrDuplicateCode     = errors.New("invite code already exists")
	ErrEmailMismatch     = errors.New("invite is bound to a different email")

	// 入参校验（表单级，可本地修正，不需要重试）
	ErrValidation = errors.New("validation failed")

	// 账号 / 会话
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrAccountDisabled = errors.New("account disabled")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")

	// 档案
	ErrProfileNotFound     = errors.New("profile not found")
	ErrBrandNotFound       = errors.New("brand record not found")
	ErrStylistNotFound     = errors.New("stylist record not found")
	ErrProfileRoleConflict = errors.New("profile exists with a different role")

	// 存储层兜底：不可预期的约束冲突 / 连接失败，可重试
	ErrPersistence = errors.New("persistence failure")
)

// EmailMismatchError 带上邀请实际绑定的邮箱，前端提示用户该换哪个账号登录。
// Unwrap 到 ErrEmailMismatch，errors.Is 的调用方不受影响。
type EmailMismatchError struct {
	RequiredEmail string
}

func (e *EmailMismatchError) Error() string {
	return "invite is bound to " + e.RequiredEmail
}

func (e *EmailMismatchError) Unwrap() error { return ErrEmailMismatch }
