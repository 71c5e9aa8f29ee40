// server/internal/biz/auth_test.go
package biz

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/crypto/bcrypt"
)

type memAccountRepo struct {
	mu sync.Mutex

	byEmail   map[string]*Account
	lastLogin map[int]time.Time
	nextID    int
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{
		byEmail:   make(map[string]*Account),
		lastLogin: make(map[int]time.Time),
		nextID:    1,
	}
}

func (r *memAccountRepo) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.byEmail[email]
	if a == nil {
		return nil, ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAccountRepo) CreateAccount(ctx context.Context, a *Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[a.Email]; ok {
		return nil, ErrAccountExists
	}
	cp := *a
	cp.ID = r.nextID
	r.nextID++
	r.byEmail[cp.Email] = &cp
	out := cp
	return &out, nil
}

func (r *memAccountRepo) UpdateAccountLastLogin(ctx context.Context, id int, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLogin[id] = t
	return nil
}

type tokenCall struct {
	accountID int
	email     string
	role      Role
}

func newAuthUsecaseForTest(repo AccountRepo, profiles ProfileRepo, calls *[]tokenCall) *AuthUsecase {
	logger := log.NewStdLogger(io.Discard)
	tp := tracesdk.NewTracerProvider()
	genTok := func(accountID int, email string, role Role) (string, time.Time, error) {
		if calls != nil {
			*calls = append(*calls, tokenCall{accountID, email, role})
		}
		return "tok-abc", time.Now().Add(7 * 24 * time.Hour), nil
	}
	return NewAuthUsecase(repo, profiles, genTok, logger, tp)
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	repo := newMemAccountRepo()
	var calls []tokenCall
	uc := newAuthUsecaseForTest(repo, newMemProfileRepo(), &calls)

	token, exp, acc, err := uc.Register(context.Background(), "ana@example.com", "p@ssw0rd")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if token != "tok-abc" {
		t.Fatalf("unexpected token: %s", token)
	}
	if acc == nil || acc.Email != "ana@example.com" || acc.ID == 0 {
		t.Fatalf("unexpected account: %+v", acc)
	}
	if exp.Before(time.Now()) {
		t.Fatalf("unexpected expireAt: %v", exp)
	}

	// 新账号还没建档，token 里角色留空
	if len(calls) != 1 || calls[0].role != "" {
		t.Fatalf("expected empty role in token, got %+v", calls)
	}

	// 密码必须是 bcrypt 哈希，不能明文落库
	stored, _ := repo.GetAccountByEmail(context.Background(), "ana@example.com")
	if stored.PasswordHash == "p@ssw0rd" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p@ssw0rd")) != nil {
		t.Fatalf("stored hash does not verify")
	}
}

func TestAuthUsecase_Register_EmailExists(t *testing.T) {
	repo := newMemAccountRepo()
	uc := newAuthUsecaseForTest(repo, newMemProfileRepo(), nil)

	if _, _, _, err := uc.Register(context.Background(), "ana@example.com", "x1"); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}

	_, _, _, err := uc.Register(context.Background(), "ana@example.com", "x2")
	if !errors.Is(err, ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthUsecase_Register_InvalidArgs(t *testing.T) {
	uc := newAuthUsecaseForTest(newMemAccountRepo(), newMemProfileRepo(), nil)

	if _, _, _, err := uc.Register(context.Background(), "", "x"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty email, got %v", err)
	}
	if _, _, _, err := uc.Register(context.Background(), "a@b.com", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty password, got %v", err)
	}
}

func TestAuthUsecase_Login_Success_ResolvesRole(t *testing.T) {
	repo := newMemAccountRepo()
	profiles := newMemProfileRepo()
	var calls []tokenCall
	uc := newAuthUsecaseForTest(repo, profiles, &calls)

	_, _, acc, err := uc.Register(context.Background(), "ana@example.com", "p@ss")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// 建档成品牌后，登录 token 要带上角色
	if _, err := profiles.UpsertProfile(context.Background(), &Profile{
		AccountID: acc.ID, FullName: "Ana", Email: acc.Email, UserType: RoleBrand,
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	calls = calls[:0]
	token, _, got, err := uc.Login(context.Background(), "ana@example.com", "p@ss")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || got.ID != acc.ID {
		t.Fatalf("unexpected login result: %q %+v", token, got)
	}
	if len(calls) != 1 || calls[0].role != RoleBrand {
		t.Fatalf("expected brand role in token, got %+v", calls)
	}
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uc := newAuthUsecaseForTest(newMemAccountRepo(), newMemProfileRepo(), nil)

	if _, _, _, err := uc.Register(context.Background(), "ana@example.com", "right"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, _, err := uc.Login(context.Background(), "ana@example.com", "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	uc := newAuthUsecaseForTest(newMemAccountRepo(), newMemProfileRepo(), nil)

	_, _, _, err := uc.Login(context.Background(), "nobody@example.com", "x")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthUsecase_Login_Disabled(t *testing.T) {
	repo := newMemAccountRepo()
	uc := newAuthUsecaseForTest(repo, newMemProfileRepo(), nil)

	if _, _, _, err := uc.Register(context.Background(), "ana@example.com", "p@ss"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	repo.mu.Lock()
	repo.byEmail["ana@example.com"].Disabled = true
	repo.mu.Unlock()

	_, _, _, err := uc.Login(context.Background(), "ana@example.com", "p@ss")
	if !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}
