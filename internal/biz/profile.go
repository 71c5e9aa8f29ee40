// server/internal/biz/profile.go
package biz

import (
	"context"
	"time"
)

type Profile struct {
	ID        int
	AccountID int
	FullName  string
	Email     string
	UserType  Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Brand struct {
	ID             int
	ProfileID      int
	BrandName      string
	BusinessModel  string
	PriceRange     string
	TargetAudience string
	MainChallenges string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Stylist struct {
	ID            int
	ProfileID     int
	Experience    string
	PortfolioURL  string
	Specialties   []string
	PremiumAccess bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfileRepo 的写操作都是“类型化 upsert”语义：
// 唯一键冲突在 repo 内部折返成取已有行，调用方拿不到原始错误码，
// 重复提交（双击/网络重试）自然收敛到同一行。
type ProfileRepo interface {
	GetProfileByAccount(ctx context.Context, accountID int) (*Profile, error)

	// UpsertProfile 以 account_id 为冲突目标。已有档案时返回已有行，
	// 不改角色（user_type 建档后不可变）。
	UpsertProfile(ctx context.Context, p *Profile) (*Profile, error)

	GetBrandByProfile(ctx context.Context, profileID int) (*Brand, error)

	// CreateBrand 在 profile_id 冲突时取已有品牌返回（视为已存在，继续流程）。
	CreateBrand(ctx context.Context, b *Brand) (*Brand, error)

	GetStylistByProfile(ctx context.Context, profileID int) (*Stylist, error)

	// CreateStylist 同 CreateBrand 的冲突语义。
	CreateStylist(ctx context.Context, s *Stylist) (*Stylist, error)
}
