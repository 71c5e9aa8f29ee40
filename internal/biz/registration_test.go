// server/internal/biz/registration_test.go
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
)

type recordingNotifier struct {
	mu       sync.Mutex
	created  []string
	redeemed []string
}

func (n *recordingNotifier) InviteCreated(_ context.Context, inv *Invite) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, inv.Code)
}

func (n *recordingNotifier) InviteRedeemed(_ context.Context, inv *Invite, _ int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.redeemed = append(n.redeemed, inv.Code)
}

func (n *recordingNotifier) redeemedCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.redeemed)
}

func newRegistrationUsecaseForTest(repo InviteRepo, profiles ProfileRepo, notifier Notifier) *RegistrationUsecase {
	logger := log.NewStdLogger(io.Discard)
	tp := tracesdk.NewTracerProvider()
	invites := NewInviteUsecase(repo, profiles, nil, 30*24*time.Hour, logger, tp)
	return NewRegistrationUsecase(invites, repo, profiles, notifier, 15*time.Second, logger, tp)
}

func seedPendingInvite(repo *memInviteRepo, code, brandEmail string) *Invite {
	inv := &Invite{
		ID:         repo.nextID,
		Code:       code,
		BrandName:  "Casa Verde",
		BrandEmail: brandEmail,
		StylistID:  9,
		Status:     InviteStatusPending,
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	repo.nextID++
	repo.byCode[code] = inv
	return inv
}

func brandClaimsCtx(accountID int, email string) context.Context {
	return NewContextWithClaims(context.Background(), &AuthClaims{
		AccountID: accountID,
		Email:     email,
	})
}

func validRedeemInput(code string) RedeemBrandInput {
	return RedeemBrandInput{
		InviteCode:     code,
		BrandName:      "Casa Verde",
		BusinessModel:  "b2c",
		PriceRange:     "medio_300",
		TargetAudience: "20-29_anos",
		MainChallenges: "estoque parado",
	}
}

func TestRegistration_RedeemBrand_FullFlow(t *testing.T) {
	repo := newMemInviteRepo()
	profiles := newMemProfileRepo()
	notifier := &recordingNotifier{}
	seedPendingInvite(repo, "REDEEMCODE01", "owner@casaverde.com")

	uc := newRegistrationUsecaseForTest(repo, profiles, notifier)
	ctx := brandClaimsCtx(42, "owner@casaverde.com")

	out, err := uc.RedeemBrand(ctx, validRedeemInput("REDEEMCODE01"))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if out.State != RedeemRegistered {
		t.Fatalf("expected RedeemRegistered, got %d", out.State)
	}
	if out.Profile == nil || out.Profile.UserType != RoleBrand || out.Profile.AccountID != 42 {
		t.Fatalf("unexpected profile: %+v", out.Profile)
	}
	if out.Brand == nil || out.Brand.BrandName != "Casa Verde" {
		t.Fatalf("unexpected brand: %+v", out.Brand)
	}
	if out.Invite == nil || out.Invite.Status != InviteStatusUsed {
		t.Fatalf("invite must end used: %+v", out.Invite)
	}
	if out.Invite.BrandID == nil || *out.Invite.BrandID != out.Brand.ID {
		t.Fatalf("invite must link to brand: %+v", out.Invite)
	}
	if notifier.redeemedCount() != 1 {
		t.Fatalf("expected one redeemed notification")
	}
}

func TestRegistration_RedeemBrand_IdempotentReplay(t *testing.T) {
	repo := newMemInviteRepo()
	profiles := newMemProfileRepo()
	seedPendingInvite(repo, "REDEEMCODE02", "owner@casaverde.com")

	uc := newRegistrationUsecaseForTest(repo, profiles, nil)
	ctx := brandClaimsCtx(42, "owner@casaverde.com")

	first, err := uc.RedeemBrand(ctx, validRedeemInput("REDEEMCODE02"))
	if err != nil {
		t.Fatalf("first redemption failed: %v", err)
	}

	// 同一身份重放：invalid(already_used) 折返成幂等成功
	second, err := uc.RedeemBrand(ctx, validRedeemInput("REDEEMCODE02"))
	if err != nil {
		t.Fatalf("replay must succeed, got %v", err)
	}
	if second.State != RedeemAlreadyRegistered {
		t.Fatalf("expected RedeemAlreadyRegistered, got %d", second.State)
	}
	if second.Brand.ID != first.Brand.ID {
		t.Fatalf("replay must converge on the same brand")
	}
	if len(profiles.brandsByProfile) != 1 {
		t.Fatalf("replay must not create a second brand")
	}
}

func TestRegistration_RedeemBrand_UsedByAnotherAccount(t *testing.T) {
	repo := newMemInviteRepo()
	profiles := newMemProfileRepo()
	seedPendingInvite(repo, "REDEEMCODE03", "owner@casaverde.com")

	uc := newRegistrationUsecaseForTest(repo, profiles, nil)

	if _, err := uc.RedeemBrand(brandClaimsCtx(1, "owner@casaverde.com"), validRedeemInput("REDEEMCODE03")); err != nil {
		t.Fatalf("first redemption failed: %v", err)
	}

	// 别的账号（哪怕邮箱对）再来：already_used 是硬失败
	_, err := uc.RedeemBrand(brandClaimsCtx(2, "owner@casaverde.com"), validRedeemInput("REDEEMCODE03"))
	if !errors.Is(err, ErrInviteAlreadyUsed) {
		t.Fatalf("expected ErrInviteAlreadyUsed, got %v", err)
	}
}

func TestRegistration_RedeemBrand_EmailMismatchNoWrites(t *testing.T) {
	repo := newMemInviteRepo()
	profiles := newMemProfileRepo()
	seedPendingInvite(repo, "REDEEMCODE04", "owner@casaverde.com")

	uc := newRegistrationUsecaseForTest(repo, profiles, nil)

	// 大小写不同也算不同人：逐字节比较
	ctx := brandClaimsCtx(42, "Owner@CasaVerde.com")

	_, err := uc.RedeemBrand(ctx, validRedeemInput("REDEEMCODE04"))
	if !errors.Is(err, ErrEmailMismatch) {
		t.Fatalf("expected ErrEmailMismatch, got %v", err)
	}
	// 错误要带上邀请实际绑定的邮箱
	var mismatch *EmailMismatchError
	if !errors.As(err, &mismatch) || mismatch.RequiredEmail != "owner@casaverde.com" {
		t.Fatalf("expected EmailMismatchError with bound email, got %v", err)
	}

	// 邮箱绑定失败必须发生在任何写入之前
	if len(profiles.profilesByAccount) != 0 || len(profiles.brandsByProfile) != 0 {
		t.Fatalf("mismatch must not write profile or brand")
	}
	inv, _ := repo.GetInviteByCode(context.Background(), "REDEEMCODE04")
	if inv.Status != InviteStatusPending {
		t.Fatalf("invite must stay pending, got %s", inv.Status)
	}
}

func TestRegistration_RedeemBrand_Expired(t *testing.T) {
	repo := newMemInviteRepo()
	inv := seedPendingInvite(repo, "REDEEMCODE05", "owner@casaverde.com")
	inv.ExpiresAt = time.Now().Add(-time.Minute)

	uc := newRegistrationUsecaseForTest(repo, newMemProfileRepo(), nil)

	_, err := uc.RedeemBrand(brandClaimsCtx(42, "owner@casaverde.com"), validRedeemInput("REDEEMCODE05"))
	if !errors.Is(err, ErrInviteExpired) {
		t.Fatalf("expected ErrInviteExpired, got %v", err)
	}

	// 过期只是读判定，状态行不动
	cur, _ := repo.GetInviteByCode(context.Background(), "REDEEMCODE05")
	if cur.Status != InviteStatusPending {
		t.Fatalf("expired invite must keep stored status, got %s", cur.Status)
	}
}

func TestRegistration_RedeemBrand_NotFound(t *testing.T) {
	uc := newRegistrationUsecaseForTest(newMemInviteRepo(), newMemProfileRepo(), nil)

	_, err := uc.RedeemBrand(brandClaimsCtx(42, "x@y.com"), validRedeemInput("NOSUCHCODE99"))
	if !errors.Is(err, ErrInviteNotFound) {
		t.Fatalf("expected ErrInviteNotFound, got %v", err)
	}
}

func TestRegistration_RedeemBrand_Unauthenticated(t *testing.T) {
	repo := newMemInviteRepo()
	seedPendingInvite(repo, "REDEEMCODE06", "owner@casaverde.com")

	uc := newRegistrationUsecaseForTest(repo, newMemProfileRepo(), nil)

	_, err := uc.RedeemBrand(context.Background(), validRedeemInput("REDEEMCODE06"))
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRegistration_RedeemBrand_InvalidForm(t *testing.T) {
	repo := newMemInviteRepo()
	seedPendingInvite(repo, "REDEEMCODE07", "owner@casaverde.com")

	uc := newRegistrationUsecaseForTest(repo, newMemProfileRepo(), nil)
	ctx := brandClaimsCtx(42, "owner@casaverde.com")

	in := validRedeemInput("REDEEMCODE07")
	in.BusinessModel = "franchise" // 不在枚举里

	_, err := uc.RedeemBrand(ctx, in)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	cur, _ := repo.GetInviteByCode(context.Background(), "REDEEMCODE07")
	if cur.Status != InviteStatusPending {
		t.Fatalf("invalid form must not consume invite")
	}
}

func TestRegistration_RedeemBrand_RoleConflict(t *testing.T) {
	repo := newMemInviteRepo()
	profiles := newMemProfileRepo()
	seedPendingInvite(repo, "REDEEMCODE08", "stylist@example.com")

	// 该账号已经以造型师身份建档
	ctx, _ := seedStylist(t, profiles, 42, "stylist@example.com")

	uc := newRegistrationUsecaseForTest(repo, profiles, nil)

	_, err := uc.RedeemBrand(ctx, validRedeemInput("REDEEMCODE08"))
	if !errors.Is(err, ErrProfileRoleConflict) {
		t.Fatalf("expected ErrProfileRoleConflict, got %v", err)
	}

	cur, _ := repo.GetInviteByCode(context.Background(), "REDEEMCODE08")
	if cur.Status != InviteStatusPending {
		t.Fatalf("role conflict must not consume invite")
	}
}

func TestRegistration_RedeemBrand_ConcurrentSameAccount(t *testing.T) {
	repo := newMemInviteRepo()
	profiles := newMemProfileRepo()
	notifier := &recordingNotifier{}
	seedPendingInvite(repo, "REDEEMCODE09", "owner@casaverde.com")

	uc := newRegistrationUsecaseForTest(repo, profiles, notifier)
	ctx := brandClaimsCtx(42, "owner@casaverde.com")

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RedeemBrand(ctx, validRedeemInput("REDEEMCODE09"))
		}(i)
	}
	wg.Wait()

	// 同一身份的并发重试全部收敛为成功
	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}

	// 但状态机只走了一次 pending→used，品牌只有一条
	cur, _ := repo.GetInviteByCode(context.Background(), "REDEEMCODE09")
	if cur.Status != InviteStatusUsed {
		t.Fatalf("expected used, got %s", cur.Status)
	}
	if len(profiles.brandsByProfile) != 1 {
		t.Fatalf("expected exactly one brand, got %d", len(profiles.brandsByProfile))
	}
}

func TestRegistration_RegisterStylist_AndReplay(t *testing.T) {
	profiles := newMemProfileRepo()
	uc := newRegistrationUsecaseForTest(newMemInviteRepo(), profiles, nil)

	ctx := NewContextWithClaims(context.Background(), &AuthClaims{
		AccountID: 7, Email: "ana@example.com",
	})

	in := RegisterStylistInput{
		FullName:    "Ana Lima",
		Experience:  "5-10",
		Specialties: []string{"consultoria", "closet detox"},
	}

	profile, stylist, err := uc.RegisterStylist(ctx, in)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if profile.UserType != RoleStylist {
		t.Fatalf("expected stylist profile, got %s", profile.UserType)
	}
	if stylist.PremiumAccess {
		t.Fatalf("premium access must never be derived at registration")
	}

	// 重放收敛到同一行
	p2, s2, err := uc.RegisterStylist(ctx, in)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if p2.ID != profile.ID || s2.ID != stylist.ID {
		t.Fatalf("replay must converge: %d/%d vs %d/%d", p2.ID, s2.ID, profile.ID, stylist.ID)
	}
}

func TestRegistration_GetMyProfile(t *testing.T) {
	profiles := newMemProfileRepo()
	uc := newRegistrationUsecaseForTest(newMemInviteRepo(), profiles, nil)

	if _, err := uc.GetMyProfile(context.Background()); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	ctx := brandClaimsCtx(42, "x@y.com")
	if _, err := uc.GetMyProfile(ctx); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
