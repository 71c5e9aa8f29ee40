// server/internal/biz/registration.go
//
// 注册 + 兑换编排：已登录身份拿着邀请码走完建档/建品牌/消费邀请的状态机。
// 三步写入没有事务兜底（存储端限制），所以顺序固定：
// profile → brand → markUsed，markUsed 永远是最后一步，
// 前面任何一步失败邀请都还是 pending，可以安全重试。
package biz

import (
	"context"
	"errors"
	"time"

	applog "fforecasting/server/pkg/logger"

	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type RedeemState int

const (
	// RedeemRegistered 本次兑换完成了建档+建品牌+消费邀请
	RedeemRegistered RedeemState = iota + 1

	// RedeemAlreadyRegistered 档案已存在，短路去 dashboard（幂等成功）
	RedeemAlreadyRegistered
)

// RedeemOutcome 是编排的带标签结果，调用方对 State 做模式匹配，
// 不再层层传可选回调。
type RedeemOutcome struct {
	State   RedeemState
	Profile *Profile
	Brand   *Brand
	Invite  *Invite
}

// Notifier 把“邀请被使用”这类事件往外发（telegram 运营群等），
// 实现方自己决定异步与否，编排层不等待。
type Notifier interface {
	InviteCreated(ctx context.Context, inv *Invite)
	InviteRedeemed(ctx context.Context, inv *Invite, brandID int)
}

type NopNotifier struct{}

func (NopNotifier) InviteCreated(context.Context, *Invite)       {}
func (NopNotifier) InviteRedeemed(context.Context, *Invite, int) {}

type RedeemBrandInput struct {
	InviteCode     string `validate:"required"`
	BrandName      string `validate:"required,min=2,max=255"`
	BusinessModel  string `validate:"required,oneof=b2b b2c marketplace atacado_varejo"`
	PriceRange     string `validate:"required,oneof=popular_100 medio_300 alto_600 luxo"`
	TargetAudience string `validate:"required,oneof=15-19_anos 20-29_anos 30-45_anos 46-60_anos 60+_anos"`
	MainChallenges string `validate:"max=2000"`
}

type RegisterStylistInput struct {
	FullName     string   `validate:"required,min=2,max=255"`
	Experience   string   `validate:"required,max=64"`
	PortfolioURL string   `validate:"omitempty,url,max=512"`
	Specialties  []string `validate:"max=20,dive,max=64"`
}

type RegistrationUsecase struct {
	log    *log.Helper
	tracer trace.Tracer

	invites  *InviteUsecase
	repo     InviteRepo
	profiles ProfileRepo
	notifier Notifier

	// 端到端兑换超时，网络卡死时给客户端一个可见的失败点
	timeout time.Duration
}

func NewRegistrationUsecase(
	invites *InviteUsecase,
	repo InviteRepo,
	profiles ProfileRepo,
	notifier Notifier,
	timeout time.Duration,
	logger log.Logger,
	tp *tracesdk.TracerProvider,
) *RegistrationUsecase {
	helper := log.NewHelper(log.With(logger, "module", "biz.registration"))

	var tr trace.Tracer
	if tp != nil {
		tr = tp.Tracer("biz.registration")
	} else {
		tr = otel.Tracer("biz.registration")
	}

	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &RegistrationUsecase{
		log:      helper,
		tracer:   tr,
		invites:  invites,
		repo:     repo,
		profiles: profiles,
		notifier: notifier,
		timeout:  timeout,
	}
}

// ======================
// 品牌兑换（状态机主路径）
// ======================

func (uc *RegistrationUsecase) RedeemBrand(ctx context.Context, in RedeemBrandInput) (out *RedeemOutcome, err error) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok || claims == nil {
		return nil, ErrUnauthenticated
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	ctx = applog.WithInviteCode(ctx, in.InviteCode)
	ctx, span := uc.tracer.Start(ctx, "registration.redeem_brand",
		trace.WithAttributes(
			attribute.Int("auth.account_id", claims.AccountID),
		),
	)
	defer span.End()

	l := uc.log.WithContext(ctx)

	if e := validate.Struct(in); e != nil {
		err = errors.Join(ErrValidation, e)
		span.SetStatus(codes.Error, "invalid input")
		l.Warnf("RedeemBrand invalid input err=%v", e)
		return nil, err
	}

	// 1) 跨过登录边界后重新校验，不信任客户端缓存的校验结果
	res, err := uc.invites.Validate(ctx, in.InviteCode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validate failed")
		return nil, err
	}
	if !res.Valid {
		switch res.Reason {
		case ReasonExpired:
			err = ErrInviteExpired
		case ReasonAlreadyUsed:
			// 幂等：已经是自己兑换过的，当成功返回
			if out := uc.redeemedByCaller(ctx, claims, in.InviteCode); out != nil {
				span.SetStatus(codes.Ok, "OK")
				l.Infof("RedeemBrand idempotent replay account_id=%d", claims.AccountID)
				return out, nil
			}
			err = ErrInviteAlreadyUsed
		default:
			err = ErrInviteNotFound
		}
		span.SetStatus(codes.Error, err.Error())
		l.Infof("RedeemBrand invalid invite reason=%s", res.Reason)
		return nil, err
	}

	// 2) 邮箱绑定：和邀请绑定的收件邮箱逐字节比较，大小写不同就是不同人。
	// 必须发生在任何写入之前。
	if claims.Email != res.BrandEmail {
		err = &EmailMismatchError{RequiredEmail: res.BrandEmail}
		span.SetStatus(codes.Error, err.Error())
		l.Infof("RedeemBrand email mismatch account_id=%d", claims.AccountID)
		return nil, err
	}

	// 3) 档案：没有就建（upsert，重复提交收敛到同一行），有就直接用
	profile, err := uc.profiles.GetProfileByAccount(ctx, claims.AccountID)
	hadProfile := err == nil
	if errors.Is(err, ErrProfileNotFound) {
		profile, err = uc.profiles.UpsertProfile(ctx, &Profile{
			AccountID: claims.AccountID,
			FullName:  in.BrandName,
			Email:     claims.Email,
			UserType:  RoleBrand,
		})
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "profile step failed")
		l.Errorf("RedeemBrand profile step failed account_id=%d err=%v", claims.AccountID, err)
		return nil, err
	}
	if profile.UserType != RoleBrand {
		err = ErrProfileRoleConflict
		span.SetStatus(codes.Error, err.Error())
		l.Warnf("RedeemBrand role conflict account_id=%d user_type=%s", claims.AccountID, profile.UserType)
		return nil, err
	}

	// 4) 品牌记录：profile_id 唯一，冲突时 repo 折返已有行
	brand, err := uc.profiles.GetBrandByProfile(ctx, profile.ID)
	if errors.Is(err, ErrBrandNotFound) {
		brand, err = uc.profiles.CreateBrand(ctx, &Brand{
			ProfileID:      profile.ID,
			BrandName:      in.BrandName,
			BusinessModel:  in.BusinessModel,
			PriceRange:     in.PriceRange,
			TargetAudience: in.TargetAudience,
			MainChallenges: in.MainChallenges,
		})
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "brand step failed")
		l.Errorf("RedeemBrand brand step failed profile_id=%d err=%v", profile.ID, err)
		return nil, err
	}

	// 5) 消费邀请，永远是最后一个写入。CAS 保证并发兑换只有一个赢家。
	inv, err := uc.repo.MarkInviteUsed(ctx, in.InviteCode, brand.ID)
	if errors.Is(err, ErrInviteAlreadyUsed) {
		// 自己的重试在 CAS 上输了也算成功，别人的消费才是失败
		cur, e := uc.repo.GetInviteByCode(ctx, in.InviteCode)
		if e == nil && cur.BrandID != nil && *cur.BrandID == brand.ID {
			inv, err = cur, nil
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mark used failed")
		l.Errorf("RedeemBrand mark used failed brand_id=%d err=%v", brand.ID, err)
		return nil, err
	}

	state := RedeemRegistered
	if hadProfile {
		state = RedeemAlreadyRegistered
	}

	uc.notifier.InviteRedeemed(ctx, inv, brand.ID)

	span.SetAttributes(
		attribute.Int("invite.id", inv.ID),
		attribute.Int("brand.id", brand.ID),
	)
	span.SetStatus(codes.Ok, "OK")
	l.Infof("RedeemBrand success invite_id=%d brand_id=%d state=%d", inv.ID, brand.ID, state)

	return &RedeemOutcome{
		State:   state,
		Profile: profile,
		Brand:   brand,
		Invite:  inv,
	}, nil
}

// redeemedByCaller 判断 already_used 的邀请是不是当前身份自己消费的
func (uc *RegistrationUsecase) redeemedByCaller(ctx context.Context, claims *AuthClaims, code string) *RedeemOutcome {
	inv, err := uc.repo.GetInviteByCode(ctx, code)
	if err != nil || inv.BrandID == nil {
		return nil
	}
	profile, err := uc.profiles.GetProfileByAccount(ctx, claims.AccountID)
	if err != nil {
		return nil
	}
	brand, err := uc.profiles.GetBrandByProfile(ctx, profile.ID)
	if err != nil || brand.ID != *inv.BrandID {
		return nil
	}
	return &RedeemOutcome{
		State:   RedeemAlreadyRegistered,
		Profile: profile,
		Brand:   brand,
		Invite:  inv,
	}
}

// ======================
// 造型师注册（不走邀请）
// ======================

func (uc *RegistrationUsecase) RegisterStylist(ctx context.Context, in RegisterStylistInput) (profile *Profile, stylist *Stylist, err error) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok || claims == nil {
		return nil, nil, ErrUnauthenticated
	}

	ctx, span := uc.tracer.Start(ctx, "registration.register_stylist",
		trace.WithAttributes(
			attribute.Int("auth.account_id", claims.AccountID),
		),
	)
	defer span.End()

	l := uc.log.WithContext(ctx)

	if e := validate.Struct(in); e != nil {
		err = errors.Join(ErrValidation, e)
		span.SetStatus(codes.Error, "invalid input")
		l.Warnf("RegisterStylist invalid input err=%v", e)
		return nil, nil, err
	}

	profile, err = uc.profiles.GetProfileByAccount(ctx, claims.AccountID)
	if errors.Is(err, ErrProfileNotFound) {
		profile, err = uc.profiles.UpsertProfile(ctx, &Profile{
			AccountID: claims.AccountID,
			FullName:  in.FullName,
			Email:     claims.Email,
			UserType:  RoleStylist,
		})
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "profile step failed")
		l.Errorf("RegisterStylist profile step failed account_id=%d err=%v", claims.AccountID, err)
		return nil, nil, err
	}
	if profile.UserType != RoleStylist {
		err = ErrProfileRoleConflict
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	stylist, err = uc.profiles.GetStylistByProfile(ctx, profile.ID)
	if errors.Is(err, ErrStylistNotFound) {
		stylist, err = uc.profiles.CreateStylist(ctx, &Stylist{
			ProfileID:    profile.ID,
			Experience:   in.Experience,
			PortfolioURL: in.PortfolioURL,
			Specialties:  in.Specialties,
		})
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "stylist step failed")
		l.Errorf("RegisterStylist stylist step failed profile_id=%d err=%v", profile.ID, err)
		return nil, nil, err
	}

	span.SetStatus(codes.Ok, "OK")
	l.Infof("RegisterStylist success profile_id=%d stylist_id=%d", profile.ID, stylist.ID)
	return profile, stylist, nil
}

// GetMyProfile 给客户端决定“去注册还是去 dashboard”
func (uc *RegistrationUsecase) GetMyProfile(ctx context.Context) (*Profile, error) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok || claims == nil {
		return nil, ErrUnauthenticated
	}
	return uc.profiles.GetProfileByAccount(ctx, claims.AccountID)
}
