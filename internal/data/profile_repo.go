package data

import (
	"context"
	"time"

	"fforecasting/server/internal/biz"
	"fforecasting/server/internal/data/model/ent"
	entbrand "fforecasting/server/internal/data/model/ent/brand"
	entprofile "fforecasting/server/internal/data/model/ent/profile"
	entstylist "fforecasting/server/internal/data/model/ent/stylist"

	"github.com/go-kratos/kratos/v2/log"
)

type profileRepo struct {
	data *Data
	log  *log.Helper
}

func NewProfileRepo(data *Data, logger log.Logger) *profileRepo {
	return &profileRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data.profile_repo")),
	}
}

var _ biz.ProfileRepo = (*profileRepo)(nil)

func toBizProfile(m *ent.Profile) *biz.Profile {
	return &biz.Profile{
		ID:        m.ID,
		AccountID: m.AccountID,
		FullName:  m.FullName,
		Email:     m.Email,
		UserType:  biz.Role(m.UserType),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBizBrand(m *ent.Brand) *biz.Brand {
	return &biz.Brand{
		ID:             m.ID,
		ProfileID:      m.ProfileID,
		BrandName:      m.BrandName,
		BusinessModel:  m.BusinessModel,
		PriceRange:     m.PriceRange,
		TargetAudience: m.TargetAudience,
		MainChallenges: m.MainChallenges,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toBizStylist(m *ent.Stylist) *biz.Stylist {
	return &biz.Stylist{
		ID:            m.ID,
		ProfileID:     m.ProfileID,
		Experience:    m.Experience,
		PortfolioURL:  m.PortfolioURL,
		Specialties:   m.Specialties,
		PremiumAccess: m.PremiumAccess,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// =======================
// profile
// =======================

func (r *profileRepo) GetProfileByAccount(ctx context.Context, accountID int) (*biz.Profile, error) {
	l := r.log.WithContext(ctx)

	m, err := r.data.mysql.Profile.
		Query().
		Where(entprofile.AccountID(accountID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, biz.ErrProfileNotFound
		}
		l.Errorf("GetProfileByAccount failed account_id=%d err=%v", accountID, err)
		return nil, err
	}

	return toBizProfile(m), nil
}

// UpsertProfile 不用 ON DUPLICATE KEY（MySQL 下 ent 的 upsert 拿不回已有行），
// 走 insert → 撞 account_id 唯一索引 → 取已有行。已有行的 user_type 不动。
func (r *profileRepo) UpsertProfile(ctx context.Context, in *biz.Profile) (*biz.Profile, error) {
	l := r.log.WithContext(ctx)

	l.Infof("UpsertProfile start account_id=%d user_type=%s", in.AccountID, in.UserType)

	now := time.Now()
	m, err := r.data.mysql.Profile.
		Create().
		SetAccountID(in.AccountID).
		SetFullName(in.FullName).
		SetEmail(in.Email).
		SetUserType(entprofile.UserType(in.UserType)).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		if isDuplicateProfileConstraint(err) {
			l.Infof("UpsertProfile exists account_id=%d, fetching", in.AccountID)
			return r.GetProfileByAccount(ctx, in.AccountID)
		}
		l.Errorf("UpsertProfile failed err=%v", err)
		return nil, err
	}

	l.Infof("UpsertProfile created id=%d account_id=%d", m.ID, m.AccountID)

	return toBizProfile(m), nil
}

// =======================
// brand
// =======================

func (r *profileRepo) GetBrandByProfile(ctx context.Context, profileID int) (*biz.Brand, error) {
	l := r.log.WithContext(ctx)

	m, err := r.data.mysql.Brand.
		Query().
		Where(entbrand.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, biz.ErrBrandNotFound
		}
		l.Errorf("GetBrandByProfile failed profile_id=%d err=%v", profileID, err)
		return nil, err
	}

	return toBizBrand(m), nil
}

func (r *profileRepo) CreateBrand(ctx context.Context, in *biz.Brand) (*biz.Brand, error) {
	l := r.log.WithContext(ctx)

	l.Infof("CreateBrand start profile_id=%d", in.ProfileID)

	now := time.Now()
	m, err := r.data.mysql.Brand.
		Create().
		SetProfileID(in.ProfileID).
		SetBrandName(in.BrandName).
		SetBusinessModel(in.BusinessModel).
		SetPriceRange(in.PriceRange).
		SetTargetAudience(in.TargetAudience).
		SetMainChallenges(in.MainChallenges).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		if isDuplicateBrandConstraint(err) {
			// 重复提交走这里，取已有品牌继续流程
			l.Infof("CreateBrand exists profile_id=%d, fetching", in.ProfileID)
			return r.GetBrandByProfile(ctx, in.ProfileID)
		}
		l.Errorf("CreateBrand failed err=%v", err)
		return nil, err
	}

	l.Infof("CreateBrand success id=%d profile_id=%d", m.ID, m.ProfileID)

	return toBizBrand(m), nil
}

// =======================
// stylist
// =======================

func (r *profileRepo) GetStylistByProfile(ctx context.Context, profileID int) (*biz.Stylist, error) {
	l := r.log.WithContext(ctx)

	m, err := r.data.mysql.Stylist.
		Query().
		Where(entstylist.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, biz.ErrStylistNotFound
		}
		l.Errorf("GetStylistByProfile failed profile_id=%d err=%v", profileID, err)
		return nil, err
	}

	return toBizStylist(m), nil
}

func (r *profileRepo) CreateStylist(ctx context.Context, in *biz.Stylist) (*biz.Stylist, error) {
	l := r.log.WithContext(ctx)

	l.Infof("CreateStylist start profile_id=%d", in.ProfileID)

	now := time.Now()
	m, err := r.data.mysql.Stylist.
		Create().
		SetProfileID(in.ProfileID).
		SetExperience(in.Experience).
		SetPortfolioURL(in.PortfolioURL).
		SetSpecialties(in.Specialties).
		SetPremiumAccess(in.PremiumAccess).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		if isDuplicateStylistConstraint(err) {
			l.Infof("CreateStylist exists profile_id=%d, fetching", in.ProfileID)
			return r.GetStylistByProfile(ctx, in.ProfileID)
		}
		l.Errorf("CreateStylist failed err=%v", err)
		return nil, err
	}

	l.Infof("CreateStylist success id=%d profile_id=%d", m.ID, m.ProfileID)

	return toBizStylist(m), nil
}
