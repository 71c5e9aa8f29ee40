package data

import (
	"context"
	"errors"
	"time"

	"fforecasting/server/internal/biz"
	"fforecasting/server/internal/data/model/ent"
	entinvite "fforecasting/server/internal/data/model/ent/invite"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-kratos/kratos/v2/log"
)

type inviteRepo struct {
	data *Data
	log  *log.Helper
}

func NewInviteRepo(data *Data, logger log.Logger) *inviteRepo {
	return &inviteRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data.invite_repo")),
	}
}

var _ biz.InviteRepo = (*inviteRepo)(nil)

func toBizInvite(m *ent.Invite) *biz.Invite {
	var brandID *int
	if m.BrandID != nil {
		id := *m.BrandID
		brandID = &id
	}
	return &biz.Invite{
		ID:         m.ID,
		Code:       m.Code,
		BrandName:  m.BrandName,
		BrandEmail: m.BrandEmail,
		StylistID:  m.StylistID,
		Status:     biz.InviteStatus(m.Status),
		BrandID:    brandID,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *inviteRepo) CreateInvite(ctx context.Context, in *biz.Invite) (*biz.Invite, error) {
	l := r.log.WithContext(ctx)

	l.Infof("CreateInvite start stylist_id=%d brand_email=%s", in.StylistID, in.BrandEmail)

	now := time.Now()
	m, err := r.data.mysql.Invite.
		Create().
		SetCode(in.Code).
		SetBrandName(in.BrandName).
		SetBrandEmail(in.BrandEmail).
		SetStylistID(in.StylistID).
		SetStatus(entinvite.StatusPending).
		SetExpiresAt(in.ExpiresAt).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		if isDuplicateCodeConstraint(err) {
			// 撞唯一索引，交给 biz 层换个 code 重试
			l.Warnf("CreateInvite duplicate code=%s", in.Code)
			return nil, biz.ErrDuplicateCode
		}
		l.Errorf("CreateInvite failed err=%v", err)
		return nil, err
	}

	l.Infof("CreateInvite success id=%d code=%s", m.ID, m.Code)

	return toBizInvite(m), nil
}

func (r *inviteRepo) GetInviteByCode(ctx context.Context, code string) (*biz.Invite, error) {
	l := r.log.WithContext(ctx)

	if code == "" {
		return nil, biz.ErrInviteNotFound
	}

	// code 列是 *_bin 排序规则，查找天然区分大小写
	m, err := r.data.mysql.Invite.
		Query().
		Where(entinvite.Code(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, biz.ErrInviteNotFound
		}
		l.Errorf("GetInviteByCode failed code=%s err=%v", code, err)
		return nil, err
	}

	return toBizInvite(m), nil
}

// MarkInviteUsed 用单条条件 UPDATE 做 compare-and-set：
// status 还在 pending/accepted 才允许转 used，影响行数为 0 说明输掉了竞争
// （或根本不存在），靠一次补读区分这两种情况。
func (r *inviteRepo) MarkInviteUsed(ctx context.Context, code string, brandID int) (*biz.Invite, error) {
	l := r.log.WithContext(ctx)

	l.Infof("MarkInviteUsed start code=%s brand_id=%d", code, brandID)

	n, err := r.data.mysql.Invite.
		Update().
		Where(
			entinvite.Code(code),
			entinvite.StatusIn(entinvite.StatusPending, entinvite.StatusAccepted),
		).
		SetStatus(entinvite.StatusUsed).
		SetBrandID(brandID).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		l.Errorf("MarkInviteUsed failed code=%s err=%v", code, err)
		return nil, err
	}

	if n == 0 {
		inv, err := r.GetInviteByCode(ctx, code)
		if err != nil {
			if errors.Is(err, biz.ErrInviteNotFound) {
				return nil, biz.ErrInviteNotFound
			}
			return nil, err
		}
		l.Infof("MarkInviteUsed lost race code=%s status=%s", code, inv.Status)
		return nil, biz.ErrInviteAlreadyUsed
	}

	inv, err := r.GetInviteByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	l.Infof("MarkInviteUsed success code=%s brand_id=%d", code, brandID)

	return inv, nil
}

func (r *inviteRepo) ListInvitesByStylist(ctx context.Context, stylistID int) ([]*biz.Invite, error) {
	l := r.log.WithContext(ctx)

	rows, err := r.data.mysql.Invite.
		Query().
		Where(entinvite.StylistID(stylistID)).
		Order(entinvite.ByCreatedAt(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		l.Errorf("ListInvitesByStylist failed stylist_id=%d err=%v", stylistID, err)
		return nil, err
	}

	out := make([]*biz.Invite, 0, len(rows))
	for _, m := range rows {
		out = append(out, toBizInvite(m))
	}
	return out, nil
}
