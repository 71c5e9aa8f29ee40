package data

import (
	"context"
	"errors"
	"time"

	"fforecasting/server/internal/biz"
	"fforecasting/server/internal/data/model/ent"
	entaccount "fforecasting/server/internal/data/model/ent/account"

	"github.com/go-kratos/kratos/v2/log"
)

type accountRepo struct {
	data *Data
	log  *log.Helper
}

func NewAccountRepo(data *Data, logger log.Logger) *accountRepo {
	return &accountRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data.account_repo")),
	}
}

var _ biz.AccountRepo = (*accountRepo)(nil)

func toBizAccount(a *ent.Account) *biz.Account {
	var lastLogin *time.Time
	if a.LastLoginAt != nil {
		t := *a.LastLoginAt
		lastLogin = &t
	}
	return &biz.Account{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Disabled:     a.Disabled,
		LastLoginAt:  lastLogin,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *accountRepo) GetAccountByEmail(ctx context.Context, email string) (*biz.Account, error) {
	l := r.log.WithContext(ctx)

	if email == "" {
		l.Warn("GetAccountByEmail: empty email")
		return nil, errors.New("email is required")
	}

	// 邮箱查找区分大小写，列排序规则必须是 *_bin（见 schema 注释）
	a, err := r.data.mysql.Account.
		Query().
		Where(entaccount.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, biz.ErrAccountNotFound
		}
		l.Errorf("GetAccountByEmail failed email=%s err=%v", email, err)
		return nil, err
	}

	return toBizAccount(a), nil
}

func (r *accountRepo) CreateAccount(ctx context.Context, in *biz.Account) (*biz.Account, error) {
	l := r.log.WithContext(ctx)

	l.Infof("CreateAccount start email=%s", in.Email)

	now := time.Now()
	a, err := r.data.mysql.Account.
		Create().
		SetEmail(in.Email).
		SetPasswordHash(in.PasswordHash).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		if isDuplicateEmailConstraint(err) {
			l.Infof("CreateAccount duplicate email=%s", in.Email)
			return nil, biz.ErrAccountExists
		}
		l.Errorf("CreateAccount failed err=%v", err)
		return nil, err
	}

	l.Infof("CreateAccount success id=%d email=%s", a.ID, a.Email)

	return toBizAccount(a), nil
}

func (r *accountRepo) UpdateAccountLastLogin(ctx context.Context, id int, t time.Time) error {
	l := r.log.WithContext(ctx)

	l.Infof("UpdateAccountLastLogin account_id=%d", id)

	_, err := r.data.mysql.Account.
		UpdateOneID(id).
		SetLastLoginAt(t).
		SetUpdatedAt(time.Now()).
		Save(ctx)

	if err != nil {
		l.Errorf("UpdateAccountLastLogin failed account_id=%d err=%v", id, err)
	}

	return err
}
