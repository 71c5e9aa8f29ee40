// server/internal/biz/invite.go
package biz

import (
	"context"
	"errors"
	"time"

	"fforecasting/server/pkg/invitecode"
	applog "fforecasting/server/pkg/logger"

	"github.com/go-playground/validator/v10"

	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted" // 预留的中间态，v1 没有写路径
	InviteStatusUsed     InviteStatus = "used"
	InviteStatusExpired  InviteStatus = "expired" // 逻辑态，过期靠 expires_at 推导
)

type Invite struct {
	ID         int
	Code       string
	BrandName  string
	BrandEmail string
	StylistID  int
	Status     InviteStatus
	BrandID    *int
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type InviteRepo interface {
	// CreateInvite 插入 pending 邀请；code 撞唯一索引时返回 ErrDuplicateCode。
	CreateInvite(ctx context.Context, inv *Invite) (*Invite, error)

	// GetInviteByCode 精确匹配，区分大小写；不存在返回 ErrInviteNotFound。
	GetInviteByCode(ctx context.Context, code string) (*Invite, error)

	// MarkInviteUsed 是 compare-and-set：只有 pending/accepted 才能转 used，
	// 并发兑换只有一个写者成功，输家拿 ErrInviteAlreadyUsed。
	MarkInviteUsed(ctx context.Context, code string, brandID int) (*Invite, error)

	// ListInvitesByStylist 按创建时间倒序，只读幂等。
	ListInvitesByStylist(ctx context.Context, stylistID int) ([]*Invite, error)
}

// 校验结果的 reason 取值，对外是长期稳定的线协议
const (
	ReasonNotFound    = "not_found"
	ReasonExpired     = "expired"
	ReasonAlreadyUsed = "already_used"
)

// ValidateResult 是兑换校验的带标签结果：要么 valid + 兑换所需数据，
// 要么 invalid + reason。无效不是 error，存储故障才是。
type ValidateResult struct {
	Valid      bool
	Reason     string
	BrandName  string
	BrandEmail string
	StylistID  int
}

type CreateInviteInput struct {
	BrandName  string `validate:"required,min=2,max=255"`
	BrandEmail string `validate:"required,email,max=255"`
}

var validate = validator.New()

// 撞码就重新生成，三次都撞直接放弃（36^12 空间，连撞说明出事了）
const maxGenerateAttempts = 3

type InviteUsecase struct {
	log    *log.Helper
	tracer trace.Tracer

	repo     InviteRepo
	profiles ProfileRepo
	notifier Notifier

	expireIn time.Duration
	nowFn    func() time.Time
}

func NewInviteUsecase(repo InviteRepo, profiles ProfileRepo, notifier Notifier, expireIn time.Duration, logger log.Logger, tp *tracesdk.TracerProvider) *InviteUsecase {
	helper := log.NewHelper(log.With(logger, "module", "biz.invite"))

	var tr trace.Tracer
	if tp != nil {
		tr = tp.Tracer("biz.invite")
	} else {
		tr = otel.Tracer("biz.invite")
	}

	if expireIn <= 0 {
		expireIn = 30 * 24 * time.Hour
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &InviteUsecase{
		log:      helper,
		tracer:   tr,
		repo:     repo,
		profiles: profiles,
		notifier: notifier,
		expireIn: expireIn,
		nowFn:    time.Now,
	}
}

// requireStylist 取会话里的造型师身份，并解析出 stylist 记录
func (uc *InviteUsecase) requireStylist(ctx context.Context) (*AuthClaims, *Stylist, error) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok || claims == nil {
		return nil, nil, ErrUnauthenticated
	}

	p, err := uc.profiles.GetProfileByAccount(ctx, claims.AccountID)
	if err != nil {
		return nil, nil, err
	}
	if p.UserType != RoleStylist {
		return nil, nil, ErrForbidden
	}

	s, err := uc.profiles.GetStylistByProfile(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}
	return claims, s, nil
}

// ======================
// 创建邀请（造型师）
// ======================

func (uc *InviteUsecase) CreateInvite(ctx context.Context, in CreateInviteInput) (inv *Invite, err error) {
	ctx, span := uc.tracer.Start(ctx, "invite.create",
		trace.WithAttributes(
			attribute.String("invite.brand_name", in.BrandName),
		),
	)
	defer span.End()

	l := uc.log.WithContext(ctx)

	_, stylist, err := uc.requireStylist(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		l.Warnf("CreateInvite auth failed err=%v", err)
		return nil, err
	}

	if e := validate.Struct(in); e != nil {
		err = errors.Join(ErrValidation, e)
		span.SetStatus(codes.Error, "invalid input")
		l.Warnf("CreateInvite invalid input err=%v", e)
		return nil, err
	}

	now := uc.nowFn()

	// 撞唯一索引就换码重试，有限次数
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		code, e := invitecode.New()
		if e != nil {
			err = e
			span.RecordError(err)
			span.SetStatus(codes.Error, "generate code failed")
			return nil, err
		}

		inv, err = uc.repo.CreateInvite(ctx, &Invite{
			Code:       code,
			BrandName:  in.BrandName,
			BrandEmail: in.BrandEmail,
			StylistID:  stylist.ID,
			Status:     InviteStatusPending,
			ExpiresAt:  now.Add(uc.expireIn),
		})
		if err == nil {
			span.SetAttributes(
				attribute.Int("invite.id", inv.ID),
				attribute.Int("invite.attempts", attempt),
			)
			span.SetStatus(codes.Ok, "OK")
			l.Infof("CreateInvite success id=%d stylist_id=%d attempts=%d", inv.ID, stylist.ID, attempt)
			uc.notifier.InviteCreated(ctx, inv)
			return inv, nil
		}
		if !errors.Is(err, ErrDuplicateCode) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "persist invite failed")
			l.Errorf("CreateInvite persist failed stylist_id=%d err=%v", stylist.ID, err)
			return nil, err
		}
		l.Warnf("CreateInvite code collision, regenerating attempt=%d", attempt)
	}

	span.SetStatus(codes.Error, "code collisions exhausted")
	l.Errorf("CreateInvite gave up after %d collisions stylist_id=%d", maxGenerateAttempts, stylist.ID)
	return nil, ErrDuplicateCode
}

// ======================
// 兑换校验（Redemption Validator）
// ======================

// Validate 是服务端唯一的“这个码现在能不能用”决策点。
// 判定顺序固定：存在 → 是否已消费 → 是否过期 → 有效。
// 过期边界是闭区间：expires_at == now 按过期算。
func (uc *InviteUsecase) Validate(ctx context.Context, code string) (res *ValidateResult, err error) {
	ctx = applog.WithInviteCode(ctx, code)
	ctx, span := uc.tracer.Start(ctx, "invite.validate")
	defer span.End()

	l := uc.log.WithContext(ctx)

	// 格式不对的码不可能在库里，省一次查询
	if !invitecode.Valid(code) {
		span.SetAttributes(attribute.String("invite.reason", ReasonNotFound))
		span.SetStatus(codes.Ok, "OK")
		l.Infof("Validate malformed code")
		return &ValidateResult{Valid: false, Reason: ReasonNotFound}, nil
	}

	inv, err := uc.repo.GetInviteByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			span.SetAttributes(attribute.String("invite.reason", ReasonNotFound))
			span.SetStatus(codes.Ok, "OK")
			l.Infof("Validate not found")
			return &ValidateResult{Valid: false, Reason: ReasonNotFound}, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		l.Errorf("Validate lookup failed err=%v", err)
		return nil, err
	}

	if inv.Status == InviteStatusUsed {
		span.SetAttributes(attribute.String("invite.reason", ReasonAlreadyUsed))
		span.SetStatus(codes.Ok, "OK")
		l.Infof("Validate already used id=%d", inv.ID)
		return &ValidateResult{Valid: false, Reason: ReasonAlreadyUsed}, nil
	}

	if inv.Status == InviteStatusExpired || !inv.ExpiresAt.After(uc.nowFn()) {
		span.SetAttributes(attribute.String("invite.reason", ReasonExpired))
		span.SetStatus(codes.Ok, "OK")
		l.Infof("Validate expired id=%d expires_at=%s", inv.ID, inv.ExpiresAt)
		return &ValidateResult{Valid: false, Reason: ReasonExpired}, nil
	}

	span.SetAttributes(attribute.Int("invite.id", inv.ID))
	span.SetStatus(codes.Ok, "OK")
	l.Infof("Validate ok id=%d stylist_id=%d", inv.ID, inv.StylistID)

	return &ValidateResult{
		Valid:      true,
		BrandName:  inv.BrandName,
		BrandEmail: inv.BrandEmail,
		StylistID:  inv.StylistID,
	}, nil
}

// ======================
// 邀请列表（造型师看自己的推荐历史）
// ======================

func (uc *InviteUsecase) ListMyInvites(ctx context.Context) (list []*Invite, err error) {
	ctx, span := uc.tracer.Start(ctx, "invite.list_mine")
	defer span.End()

	l := uc.log.WithContext(ctx)

	_, stylist, err := uc.requireStylist(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	list, err = uc.repo.ListInvitesByStylist(ctx, stylist.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		l.Errorf("ListMyInvites failed stylist_id=%d err=%v", stylist.ID, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("invite.count", len(list)))
	span.SetStatus(codes.Ok, "OK")
	return list, nil
}
