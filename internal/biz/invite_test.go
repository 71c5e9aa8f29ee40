// server/internal/biz/invite_test.go
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

type memInviteRepo struct {
	mu sync.Mutex

	byCode map[string]*Invite
	nextID int

	// 前 N 次 CreateInvite 强制返回 ErrDuplicateCode，模拟撞码
	forceDuplicates int
	createCalls     int
}

func newMemInviteRepo() *memInviteRepo {
	return &memInviteRepo{
		byCode: make(map[string]*Invite),
		nextID: 1,
	}
}

func copyInvite(inv *Invite) *Invite {
	cp := *inv
	if inv.BrandID != nil {
		id := *inv.BrandID
		cp.BrandID = &id
	}
	return &cp
}

func (r *memInviteRepo) CreateInvite(ctx context.Context, inv *Invite) (*Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.createCalls++
	if r.createCalls <= r.forceDuplicates {
		return nil, ErrDuplicateCode
	}
	if _, ok := r.byCode[inv.Code]; ok {
		return nil, ErrDuplicateCode
	}

	cp := copyInvite(inv)
	cp.ID = r.nextID
	r.nextID++
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.byCode[cp.Code] = cp
	return copyInvite(cp), nil
}

func (r *memInviteRepo) GetInviteByCode(ctx context.Context, code string) (*Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.byCode[code]
	if !ok {
		return nil, ErrInviteNotFound
	}
	return copyInvite(inv), nil
}

func (r *memInviteRepo) MarkInviteUsed(ctx context.Context, code string, brandID int) (*Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.byCode[code]
	if !ok {
		return nil, ErrInviteNotFound
	}
	// compare-and-set：pending/accepted 之外一律输
	if inv.Status != InviteStatusPending && inv.Status != InviteStatusAccepted {
		return nil, ErrInviteAlreadyUsed
	}
	inv.Status = InviteStatusUsed
	id := brandID
	inv.BrandID = &id
	inv.UpdatedAt = time.Now()
	return copyInvite(inv), nil
}

func (r *memInviteRepo) ListInvitesByStylist(ctx context.Context, stylistID int) ([]*Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Invite, 0)
	for _, inv := range r.byCode {
		if inv.StylistID == stylistID {
			out = append(out, copyInvite(inv))
		}
	}
	return out, nil
}

type memProfileRepo struct {
	mu sync.Mutex

	profilesByAccount map[int]*Profile
	brandsByProfile   map[int]*Brand
	stylistsByProfile map[int]*Stylist
	nextID            int
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{
		profilesByAccount: make(map[int]*Profile),
		brandsByProfile:   make(map[int]*Brand),
		stylistsByProfile: make(map[int]*Stylist),
		nextID:            1,
	}
}

func (r *memProfileRepo) GetProfileByAccount(ctx context.Context, accountID int) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profilesByAccount[accountID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) UpsertProfile(ctx context.Context, p *Profile) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if exist, ok := r.profilesByAccount[p.AccountID]; ok {
		cp := *exist
		return &cp, nil
	}
	cp := *p
	cp.ID = r.nextID
	r.nextID++
	r.profilesByAccount[cp.AccountID] = &cp
	out := cp
	return &out, nil
}

func (r *memProfileRepo) GetBrandByProfile(ctx context.Context, profileID int) (*Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.brandsByProfile[profileID]
	if !ok {
		return nil, ErrBrandNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memProfileRepo) CreateBrand(ctx context.Context, b *Brand) (*Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if exist, ok := r.brandsByProfile[b.ProfileID]; ok {
		cp := *exist
		return &cp, nil
	}
	cp := *b
	cp.ID = r.nextID
	r.nextID++
	r.brandsByProfile[cp.ProfileID] = &cp
	out := cp
	return &out, nil
}

func (r *memProfileRepo) GetStylistByProfile(ctx context.Context, profileID int) (*Stylist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stylistsByProfile[profileID]
	if !ok {
		return nil, ErrStylistNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memProfileRepo) CreateStylist(ctx context.Context, s *Stylist) (*Stylist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if exist, ok := r.stylistsByProfile[s.ProfileID]; ok {
		cp := *exist
		return &cp, nil
	}
	cp := *s
	cp.ID = r.nextID
	r.nextID++
	r.stylistsByProfile[cp.ProfileID] = &cp
	out := cp
	return &out, nil
}

// seedStylist 造一个已建档的造型师，返回 claims ctx 和 stylist
func seedStylist(t *testing.T, profiles *memProfileRepo, accountID int, email string) (context.Context, *Stylist) {
	t.Helper()

	p, err := profiles.UpsertProfile(context.Background(), &Profile{
		AccountID: accountID,
		FullName:  "Test Stylist",
		Email:     email,
		UserType:  RoleStylist,
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	s, err := profiles.CreateStylist(context.Background(), &Stylist{
		ProfileID:  p.ID,
		Experience: "5-10",
	})
	if err != nil {
		t.Fatalf("seed stylist: %v", err)
	}

	ctx := NewContextWithClaims(context.Background(), &AuthClaims{
		AccountID: accountID,
		Email:     email,
		Role:      RoleStylist,
	})
	return ctx, s
}

func newInviteUsecaseForTest(repo InviteRepo, profiles ProfileRepo) *InviteUsecase {
	logger := log.NewStdLogger(io.Discard)
	tp := tracesdk.NewTracerProvider()
	return NewInviteUsecase(repo, profiles, nil, 30*24*time.Hour, logger, tp)
}

func TestInviteUsecase_Create_Success(t *testing.T) {
	repo := newMemInviteRepo()
	profiles := newMemProfileRepo()
	ctx, stylist := seedStylist(t, profiles, 1, "stylist@example.com")

	uc := newInviteUsecaseForTest(repo, profiles)

	inv, err := uc.CreateInvite(ctx, CreateInviteInput{
		BrandName:  "Casa Verde",
		BrandEmail: "brand@example.com",
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if inv.StylistID != stylist.ID {
		t.Fatalf("unexpected stylist id: %d", inv.StylistID)
	}
	if inv.Status != InviteStatusPending {
		t.Fatalf("expected pending, got %s", inv.Status)
	}
	if len(inv.Code) != 12 {
		t.Fatalf("expected 12-char code, got %q", inv.Code)
	}
	wantExpiry := time.Now().Add(30 * 24 * time.Hour)
	if inv.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || inv.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Fatalf("unexpected expires_at: %v", inv.ExpiresAt)
	}
}

func TestInviteUsecase_Create_Unauthenticated(t *testing.T) {
	uc := newInviteUsecaseForTest(newMemInviteRepo(), newMemProfileRepo())

	_, err := uc.CreateInvite(context.Background(), CreateInviteInput{
		BrandName:  "Casa Verde",
		BrandEmail: "brand@example.com",
	})
	if err == nil {
		t.Fatalf("expected error for anonymous caller")
	}
}

func TestInviteUsecase_Create_BrandForbidden(t *testing.T) {
	profiles := newMemProfileRepo()
	p, _ := profiles.UpsertProfile(context.Background(), &Profile{
		AccountID: 2, FullName: "Brand", Email: "b@example.com", UserType: RoleBrand,
	})
	_ = p
	ctx := NewContextWithClaims(context.Background(), &AuthClaims{
		AccountID: 2, Email: "b@example.com", Role: RoleBrand,
	})

	uc := newInviteUsecaseForTest(newMemInviteRepo(), profiles)

	_, err := uc.CreateInvite(ctx, CreateInviteInput{
		BrandName:  "Casa Verde",
		BrandEmail: "brand@example.com",
	})
	if err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestInviteUsecase_Create_InvalidInput(t *testing.T) {
	repo := newMemInviteRepo()
	profiles := newMemProfileRepo()
	ctx, _ := seedStylist(t, profiles, 1, "stylist@example.com")

	uc := newInviteUsecaseForTest(repo, profiles)

	cases := []CreateInviteInput{
		{BrandName: "", BrandEmail: "brand@example.com"},
		{BrandName: "X", BrandEmail: "brand@example.com"}, // 太短
		{BrandName: "Casa Verde", BrandEmail: "not-an-email"},
		{BrandName: "Casa Verde", BrandEmail: ""},
	}
	for _, in := range cases {
		if _, err := uc.CreateInvite(ctx, in); err == nil {
			t.Fatalf("expected validation error for %+v", in)
		}
	}
	if len(repo.byCode) != 0 {
		t.Fatalf("invalid input must not create invites")
	}
}

func TestInviteUsecase_Create_RetriesOnDuplicateCode(t *testing.T) {
	repo := newMemInviteRepo()
	repo.forceDuplicates = 2 // 前两次撞码
	profiles := newMemProfileRepo()
	ctx, _ := seedStylist(t, profiles, 1, "stylist@example.com")

	uc := newInviteUsecaseForTest(repo, profiles)

	inv, err := uc.CreateInvite(ctx, CreateInviteInput{
		BrandName:  "Casa Verde",
		BrandEmail: "brand@example.com",
	})
	if err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}
	if inv == nil || inv.Code == "" {
		t.Fatalf("unexpected invite: %+v", inv)
	}
	if repo.createCalls != 3 {
		t.Fatalf("expected 3 create calls, got %d", repo.createCalls)
	}
}

func TestInviteUsecase_Create_GivesUpAfterCollisions(t *testing.T) {
	repo := newMemInviteRepo()
	repo.forceDuplicates = 1000 // 永远撞
	profiles := newMemProfileRepo()
	ctx, _ := seedStylist(t, profiles, 1, "stylist@example.com")

	uc := newInviteUsecaseForTest(repo, profiles)

	_, err := uc.CreateInvite(ctx, CreateInviteInput{
		BrandName:  "Casa Verde",
		BrandEmail: "brand@example.com",
	})
	if err != ErrDuplicateCode {
		t.Fatalf("expected ErrDuplicateCode, got %v", err)
	}
	if repo.createCalls != maxGenerateAttempts {
		t.Fatalf("expected %d attempts, got %d", maxGenerateAttempts, repo.createCalls)
	}
}

func TestInviteUsecase_Validate_NotFound(t *testing.T) {
	uc := newInviteUsecaseForTest(newMemInviteRepo(), newMemProfileRepo())

	res, err := uc.Validate(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("invalid invite is not an error: %v", err)
	}
	if res.Valid || res.Reason != ReasonNotFound {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestInviteUsecase_Validate_AlreadyUsedWinsOverExpired(t *testing.T) {
	repo := newMemInviteRepo()
	bid := 7
	repo.byCode["USEDCODE0001"] = &Invite{
		ID: 1, Code: "USEDCODE0001", Status: InviteStatusUsed, BrandID: &bid,
		// 同时也过期了：already_used 的判定优先
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	uc := newInviteUsecaseForTest(repo, newMemProfileRepo())

	res, err := uc.Validate(context.Background(), "USEDCODE0001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Valid || res.Reason != ReasonAlreadyUsed {
		t.Fatalf("expected already_used, got %+v", res)
	}
}

func TestInviteUsecase_Validate_ExpiryBoundaryInclusive(t *testing.T) {
	repo := newMemInviteRepo()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.byCode["BOUNDARY0001"] = &Invite{
		ID: 1, Code: "BOUNDARY0001", Status: InviteStatusPending,
		BrandName: "Casa Verde", BrandEmail: "brand@example.com", StylistID: 3,
		ExpiresAt: now,
	}

	uc := newInviteUsecaseForTest(repo, newMemProfileRepo())

	// expires_at == now：按过期算（闭区间）
	uc.nowFn = func() time.Time { return now }
	res, err := uc.Validate(context.Background(), "BOUNDARY0001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Valid || res.Reason != ReasonExpired {
		t.Fatalf("expected expired at exact boundary, got %+v", res)
	}

	// 提前一秒：还有效
	uc.nowFn = func() time.Time { return now.Add(-time.Second) }
	res, err = uc.Validate(context.Background(), "BOUNDARY0001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid one second before expiry, got %+v", res)
	}
	if res.BrandName != "Casa Verde" || res.BrandEmail != "brand@example.com" || res.StylistID != 3 {
		t.Fatalf("valid result must carry redemption data: %+v", res)
	}
}

func TestInviteUsecase_Validate_CaseSensitiveLookup(t *testing.T) {
	repo := newMemInviteRepo()
	repo.byCode["ABCDEF123456"] = &Invite{
		ID: 1, Code: "ABCDEF123456", Status: InviteStatusPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	uc := newInviteUsecaseForTest(repo, newMemProfileRepo())

	res, err := uc.Validate(context.Background(), "abcdef123456")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Valid || res.Reason != ReasonNotFound {
		t.Fatalf("lowercase lookup must miss: %+v", res)
	}
}

func TestInviteUsecase_ListMyInvites(t *testing.T) {
	repo := newMemInviteRepo()
	profiles := newMemProfileRepo()
	ctx, stylist := seedStylist(t, profiles, 1, "stylist@example.com")

	repo.byCode["AAAAAAAAAAA1"] = &Invite{ID: 1, Code: "AAAAAAAAAAA1", StylistID: stylist.ID, Status: InviteStatusPending, ExpiresAt: time.Now().Add(time.Hour)}
	repo.byCode["AAAAAAAAAAA2"] = &Invite{ID: 2, Code: "AAAAAAAAAAA2", StylistID: stylist.ID + 100, Status: InviteStatusPending, ExpiresAt: time.Now().Add(time.Hour)}

	uc := newInviteUsecaseForTest(repo, profiles)

	list, err := uc.ListMyInvites(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list) != 1 || list[0].Code != "AAAAAAAAAAA1" {
		t.Fatalf("expected only own invites, got %+v", list)
	}
}

// 两个不同 brand 同时抢同一张 pending 邀请，必须恰好一个写成功
func TestInviteRepo_MarkInviteUsed_TwoBrandsRace(t *testing.T) {
	repo := newMemInviteRepo()
	repo.byCode["RACECODE0001"] = &Invite{
		ID: 1, Code: "RACECODE0001", StylistID: 1,
		Status: InviteStatusPending, ExpiresAt: time.Now().Add(time.Hour),
	}

	const brandA, brandB = 101, 202
	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i, brandID := range []int{brandA, brandB} {
		go func(i, brandID int) {
			defer wg.Done()
			_, errs[i] = repo.MarkInviteUsed(context.Background(), "RACECODE0001", brandID)
		}(i, brandID)
	}
	wg.Wait()

	var wins, losses int
	var winner int
	for i, err := range errs {
		switch {
		case err == nil:
			wins++
			winner = []int{brandA, brandB}[i]
		case errors.Is(err, ErrInviteAlreadyUsed):
			losses++
		default:
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("wins=%d losses=%d, want exactly one of each (errs=%v)", wins, losses, errs)
	}

	inv, err := repo.GetInviteByCode(context.Background(), "RACECODE0001")
	if err != nil {
		t.Fatalf("reload invite: %v", err)
	}
	if inv.Status != InviteStatusUsed {
		t.Fatalf("status = %s, want used", inv.Status)
	}
	if inv.BrandID == nil || *inv.BrandID != winner {
		t.Fatalf("brand_id = %v, want winner %d", inv.BrandID, winner)
	}
}
