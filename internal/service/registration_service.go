// server/internal/service/registration_service.go
package service

import (
	"context"
	"time"

	"fforecasting/server/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type RegistrationService struct {
	uc  *biz.RegistrationUsecase
	log *log.Helper
}

func NewRegistrationService(uc *biz.RegistrationUsecase, logger log.Logger) *RegistrationService {
	return &RegistrationService{
		uc:  uc,
		log: log.NewHelper(log.With(logger, "module", "service.registration")),
	}
}

// POST /api/register/brand
type RedeemBrandRequest struct {
	InviteCode     string `json:"invite_code"`
	BrandName      string `json:"brand_name"`
	BusinessModel  string `json:"business_model"`
	PriceRange     string `json:"price_range"`
	TargetAudience string `json:"target_audience"`
	MainChallenges string `json:"main_challenges"`
}

type ProfileReply struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

type BrandReply struct {
	ID             int    `json:"id"`
	BrandName      string `json:"brand_name"`
	BusinessModel  string `json:"business_model"`
	PriceRange     string `json:"price_range"`
	TargetAudience string `json:"target_audience"`
	MainChallenges string `json:"main_challenges,omitempty"`
}

type RedeemBrandReply struct {
	// already_registered=true 时前端直接去 dashboard
	AlreadyRegistered bool          `json:"already_registered"`
	Profile           *ProfileReply `json:"profile"`
	Brand             *BrandReply   `json:"brand,omitempty"`
	InviteCode        string        `json:"invite_code"`
}

func toProfileReply(p *biz.Profile) *ProfileReply {
	if p == nil {
		return nil
	}
	return &ProfileReply{
		ID:       p.ID,
		FullName: p.FullName,
		Email:    p.Email,
		UserType: string(p.UserType),
	}
}

func toBrandReply(b *biz.Brand) *BrandReply {
	if b == nil {
		return nil
	}
	return &BrandReply{
		ID:             b.ID,
		BrandName:      b.BrandName,
		BusinessModel:  b.BusinessModel,
		PriceRange:     b.PriceRange,
		TargetAudience: b.TargetAudience,
		MainChallenges: b.MainChallenges,
	}
}

func (s *RegistrationService) RedeemBrand(ctx context.Context, req *RedeemBrandRequest) (*RedeemBrandReply, error) {
	start := time.Now()
	defer func() {
		s.log.WithContext(ctx).Infof("RedeemBrand done code=%s cost=%s", req.InviteCode, time.Since(start))
	}()

	out, err := s.uc.RedeemBrand(ctx, biz.RedeemBrandInput{
		InviteCode:     req.InviteCode,
		BrandName:      req.BrandName,
		BusinessModel:  req.BusinessModel,
		PriceRange:     req.PriceRange,
		TargetAudience: req.TargetAudience,
		MainChallenges: req.MainChallenges,
	})
	if err != nil {
		return nil, toAPIError(err)
	}

	reply := &RedeemBrandReply{
		AlreadyRegistered: out.State == biz.RedeemAlreadyRegistered,
		Profile:           toProfileReply(out.Profile),
		Brand:             toBrandReply(out.Brand),
	}
	if out.Invite != nil {
		reply.InviteCode = out.Invite.Code
	}
	return reply, nil
}

// POST /api/register/stylist
type RegisterStylistRequest struct {
	FullName     string   `json:"full_name"`
	Experience   string   `json:"experience"`
	PortfolioURL string   `json:"portfolio_url"`
	Specialties  []string `json:"specialties"`
}

type StylistReply struct {
	ID            int      `json:"id"`
	Experience    string   `json:"experience"`
	PortfolioURL  string   `json:"portfolio_url,omitempty"`
	Specialties   []string `json:"specialties"`
	PremiumAccess bool     `json:"premium_access"`
}

type RegisterStylistReply struct {
	Profile *ProfileReply `json:"profile"`
	Stylist *StylistReply `json:"stylist"`
}

func (s *RegistrationService) RegisterStylist(ctx context.Context, req *RegisterStylistRequest) (*RegisterStylistReply, error) {
	profile, stylist, err := s.uc.RegisterStylist(ctx, biz.RegisterStylistInput{
		FullName:     req.FullName,
		Experience:   req.Experience,
		PortfolioURL: req.PortfolioURL,
		Specialties:  req.Specialties,
	})
	if err != nil {
		return nil, toAPIError(err)
	}

	return &RegisterStylistReply{
		Profile: toProfileReply(profile),
		Stylist: &StylistReply{
			ID:            stylist.ID,
			Experience:    stylist.Experience,
			PortfolioURL:  stylist.PortfolioURL,
			Specialties:   stylist.Specialties,
			PremiumAccess: stylist.PremiumAccess,
		},
	}, nil
}

// GET /api/profile
func (s *RegistrationService) GetProfile(ctx context.Context) (*ProfileReply, error) {
	p, err := s.uc.GetMyProfile(ctx)
	if err != nil {
		return nil, toAPIError(err)
	}
	return toProfileReply(p), nil
}
