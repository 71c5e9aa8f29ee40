// server/internal/biz/auth.go
package biz

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

type AccountRepo interface {
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	CreateAccount(ctx context.Context, a *Account) (*Account, error)
	UpdateAccountLastLogin(ctx context.Context, id int, t time.Time) error
}

type Account struct {
	ID           int
	Email        string
	PasswordHash string
	Disabled     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TokenGenerator func(accountID int, email string, role Role) (token string, expireAt time.Time, err error)

type AuthUsecase struct {
	// 日志
	log    *log.Helper
	logger log.Logger

	// tracing
	tp     *tracesdk.TracerProvider
	tracer trace.Tracer

	// repo & token
	repo     AccountRepo
	profiles ProfileRepo
	genTok   TokenGenerator
}

func NewAuthUsecase(repo AccountRepo, profiles ProfileRepo, genTok TokenGenerator, logger log.Logger, tp *tracesdk.TracerProvider) *AuthUsecase {
	helper := log.NewHelper(log.With(logger, "module", "biz.auth"))

	// tracer 优先用注入的 tp；tp 为空就 fallback 全局 provider
	var tr trace.Tracer
	if tp != nil {
		tr = tp.Tracer("biz.auth")
	} else {
		tr = otel.Tracer("biz.auth")
	}

	return &AuthUsecase{
		repo:     repo,
		profiles: profiles,
		genTok:   genTok,
		log:      helper,
		logger:   logger,
		tp:       tp,
		tracer:   tr,
	}
}

func (uc *AuthUsecase) Tracer() trace.Tracer {
	if uc.tracer != nil {
		return uc.tracer
	}
	return otel.Tracer("biz.auth")
}

// roleOf 查账号已建档的角色，没建档返回空
func (uc *AuthUsecase) roleOf(ctx context.Context, accountID int) Role {
	p, err := uc.profiles.GetProfileByAccount(ctx, accountID)
	if err != nil || p == nil {
		return ""
	}
	return p.UserType
}

// ======================
// 注册
// ======================

func (uc *AuthUsecase) Register(ctx context.Context, email, password string) (token string, expireAt time.Time, a *Account, err error) {
	ctx, span := uc.Tracer().Start(ctx, "auth.register",
		trace.WithAttributes(
			attribute.String("auth.email", email),
		),
	)
	defer span.End()

	l := uc.log.WithContext(ctx)

	if email == "" || password == "" {
		err = ErrValidation
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid argument")
		l.Warnf("Register invalid args email=%q", email)
		return "", time.Time{}, nil, err
	}

	l.Infof("Register start email=%s", email)

	// 邮箱是否已注册
	exist, e := uc.repo.GetAccountByEmail(ctx, email)
	if e == nil && exist != nil {
		err = ErrAccountExists
		span.SetStatus(codes.Error, err.Error())
		l.Infof("Register account already exists email=%s", email)
		return "", time.Time{}, nil, err
	}
	// repo 查不到不强判，唯一索引在 CreateAccount 兜底

	// 哈希密码（不打印 password）
	hash, e := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if e != nil {
		err = e
		span.RecordError(err)
		span.SetStatus(codes.Error, "hash password failed")
		l.Errorf("Register hash password failed email=%s err=%v", email, err)
		return "", time.Time{}, nil, err
	}

	created, e := uc.repo.CreateAccount(ctx, &Account{
		Email:        email,
		PasswordHash: string(hash),
	})
	if e != nil {
		err = e
		span.RecordError(err)
		span.SetStatus(codes.Error, "create account failed")
		l.Errorf("Register create account failed email=%s err=%v", email, err)
		return "", time.Time{}, nil, err
	}

	span.SetAttributes(attribute.Int("auth.account_id", created.ID))

	// 新注册的账号还没有档案，角色留空，等兑换/建档流程补
	token, expireAt, e = uc.genTok(created.ID, created.Email, "")
	if e != nil {
		err = e
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate token failed")
		l.Errorf("Register generate token failed account_id=%d err=%v", created.ID, err)
		return "", time.Time{}, nil, err
	}

	span.SetAttributes(attribute.Int64("auth.token_expires_at", expireAt.Unix()))

	// last_login_at 更新失败不影响主流程
	if e := uc.repo.UpdateAccountLastLogin(ctx, created.ID, time.Now()); e != nil {
		span.RecordError(e)
		l.Warnf("Register update last_login_at failed account_id=%d err=%v", created.ID, e)
	}

	span.SetStatus(codes.Ok, "OK")
	l.Infof("Register success account_id=%d email=%s", created.ID, created.Email)

	return token, expireAt, created, nil
}

// ======================
// 登录
// ======================

func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (token string, expireAt time.Time, a *Account, err error) {
	ctx, span := uc.Tracer().Start(ctx, "auth.login",
		trace.WithAttributes(
			attribute.String("auth.email", email),
		),
	)
	defer span.End()

	l := uc.log.WithContext(ctx)

	if email == "" || password == "" {
		err = ErrValidation
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid argument")
		l.Warnf("Login invalid args email=%q", email)
		return "", time.Time{}, nil, err
	}

	l.Infof("Login start email=%s", email)

	acc, e := uc.repo.GetAccountByEmail(ctx, email)
	if e != nil || acc == nil {
		err = ErrAccountNotFound
		span.RecordError(e)
		span.SetStatus(codes.Error, err.Error())
		l.Infof("Login account not found email=%s err=%v", email, e)
		return "", time.Time{}, nil, err
	}

	span.SetAttributes(attribute.Int("auth.account_id", acc.ID))

	if acc.Disabled {
		err = ErrAccountDisabled
		span.SetStatus(codes.Error, err.Error())
		l.Infof("Login account disabled account_id=%d email=%s", acc.ID, email)
		return "", time.Time{}, nil, err
	}

	// 不要记录 password
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		err = ErrInvalidPassword
		span.SetStatus(codes.Error, err.Error())
		l.Infof("Login invalid password account_id=%d email=%s", acc.ID, email)
		return "", time.Time{}, nil, err
	}

	role := uc.roleOf(ctx, acc.ID)
	span.SetAttributes(attribute.String("auth.role", string(role)))

	token, expireAt, e = uc.genTok(acc.ID, acc.Email, role)
	if e != nil {
		err = e
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate token failed")
		l.Errorf("Login generate token failed account_id=%d err=%v", acc.ID, err)
		return "", time.Time{}, nil, err
	}

	span.SetAttributes(attribute.Int64("auth.token_expires_at", expireAt.Unix()))

	if e := uc.repo.UpdateAccountLastLogin(ctx, acc.ID, time.Now()); e != nil {
		span.RecordError(e)
		l.Warnf("Login update last_login_at failed account_id=%d err=%v", acc.ID, e)
	}

	span.SetStatus(codes.Ok, "OK")
	l.Infof("Login success account_id=%d email=%s role=%s", acc.ID, acc.Email, role)

	return token, expireAt, acc, nil
}
