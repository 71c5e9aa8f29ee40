// server/internal/service/errors.go
package service

import (
	stderrors "errors"

	"fforecasting/server/internal/biz"

	"github.com/go-kratos/kratos/v2/errors"
)

// toAPIError 把 biz 哨兵错误翻译成稳定的 HTTP 状态 + reason。
// reason 是前端的分支依据，属于线协议，改动要过评审。
func toAPIError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case stderrors.Is(err, biz.ErrValidation):
		return errors.BadRequest("VALIDATION_FAILED", err.Error())
	case stderrors.Is(err, biz.ErrUnauthenticated):
		return errors.Unauthorized("UNAUTHENTICATED", "login required")
	case stderrors.Is(err, biz.ErrInvalidPassword):
		return errors.Unauthorized("INVALID_CREDENTIALS", "wrong email or password")
	case stderrors.Is(err, biz.ErrAccountDisabled):
		return errors.Forbidden("ACCOUNT_DISABLED", "account is disabled")
	case stderrors.Is(err, biz.ErrForbidden):
		return errors.Forbidden("FORBIDDEN", err.Error())
	case stderrors.Is(err, biz.ErrEmailMismatch):
		// 邀请绑定的邮箱本来就通过 invite.validate 公开，放进 metadata 没有泄露
		out := errors.Forbidden("INVITE_EMAIL_MISMATCH", "invite is bound to a different email")
		var mismatch *biz.EmailMismatchError
		if stderrors.As(err, &mismatch) {
			out = out.WithMetadata(map[string]string{"required_email": mismatch.RequiredEmail})
		}
		return out
	case stderrors.Is(err, biz.ErrProfileRoleConflict):
		return errors.Conflict("PROFILE_ROLE_CONFLICT", "account already registered with a different role")
	case stderrors.Is(err, biz.ErrAccountExists):
		return errors.Conflict("ACCOUNT_EXISTS", "email already registered")
	case stderrors.Is(err, biz.ErrInviteAlreadyUsed):
		return errors.Conflict("INVITE_ALREADY_USED", "invite already used")
	case stderrors.Is(err, biz.ErrInviteExpired):
		return errors.New(410, "INVITE_EXPIRED", "invite expired")
	case stderrors.Is(err, biz.ErrInviteNotFound):
		return errors.NotFound("INVITE_NOT_FOUND", "invite not found")
	case stderrors.Is(err, biz.ErrProfileNotFound):
		return errors.NotFound("PROFILE_NOT_FOUND", "profile not found")
	case stderrors.Is(err, biz.ErrBrandNotFound):
		return errors.NotFound("BRAND_NOT_FOUND", "brand not found")
	case stderrors.Is(err, biz.ErrStylistNotFound):
		return errors.NotFound("STYLIST_NOT_FOUND", "stylist not found")
	case stderrors.Is(err, biz.ErrAccountNotFound):
		return errors.NotFound("ACCOUNT_NOT_FOUND", "account not found")
	default:
		// 含 ErrDuplicateCode / ErrPersistence：细节不外漏
		return errors.InternalServer("INTERNAL", "internal error")
	}
}
