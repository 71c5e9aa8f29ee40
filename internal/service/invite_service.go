// server/internal/service/invite_service.go
package service

import (
	"context"
	"time"

	"fforecasting/server/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type InviteService struct {
	uc  *biz.InviteUsecase
	log *log.Helper
}

func NewInviteService(uc *biz.InviteUsecase, logger log.Logger) *InviteService {
	return &InviteService{
		uc:  uc,
		log: log.NewHelper(log.With(logger, "module", "service.invite")),
	}
}

// POST /api/invites
type CreateInviteRequest struct {
	BrandName  string `json:"brand_name"`
	BrandEmail string `json:"brand_email"`
}

type InviteReply struct {
	ID         int    `json:"id"`
	Code       string `json:"code"`
	BrandName  string `json:"brand_name"`
	BrandEmail string `json:"brand_email"`
	Status     string `json:"status"`
	ExpiresAt  int64  `json:"expires_at"`
	CreatedAt  int64  `json:"created_at"`
}

func toInviteReply(inv *biz.Invite) *InviteReply {
	return &InviteReply{
		ID:         inv.ID,
		Code:       inv.Code,
		BrandName:  inv.BrandName,
		BrandEmail: inv.BrandEmail,
		Status:     string(inv.Status),
		ExpiresAt:  inv.ExpiresAt.Unix(),
		CreatedAt:  inv.CreatedAt.Unix(),
	}
}

func (s *InviteService) CreateInvite(ctx context.Context, req *CreateInviteRequest) (*InviteReply, error) {
	start := time.Now()
	defer func() {
		s.log.WithContext(ctx).Infof("CreateInvite done cost=%s", time.Since(start))
	}()

	inv, err := s.uc.CreateInvite(ctx, biz.CreateInviteInput{
		BrandName:  req.BrandName,
		BrandEmail: req.BrandEmail,
	})
	if err != nil {
		return nil, toAPIError(err)
	}
	return toInviteReply(inv), nil
}

// GET /api/invites
type ListInvitesReply struct {
	Invites []*InviteReply `json:"invites"`
}

func (s *InviteService) ListInvites(ctx context.Context) (*ListInvitesReply, error) {
	list, err := s.uc.ListMyInvites(ctx)
	if err != nil {
		return nil, toAPIError(err)
	}

	out := make([]*InviteReply, 0, len(list))
	for _, inv := range list {
		out = append(out, toInviteReply(inv))
	}
	return &ListInvitesReply{Invites: out}, nil
}

// invite.validate（JSON-RPC，匿名可调）
type ValidateInviteParams struct {
	InviteCode string `json:"invite_code"`
	// 旧客户端用的键，invite_code 缺省时兜底
	Code string `json:"code"`
}

func (p *ValidateInviteParams) code() string {
	if p.InviteCode != "" {
		return p.InviteCode
	}
	return p.Code
}

type ValidateInviteResult struct {
	Valid      bool   `json:"valid"`
	Reason     string `json:"reason,omitempty"`
	StylistID  int    `json:"stylist_id,omitempty"`
	BrandName  string `json:"brand_name,omitempty"`
	BrandEmail string `json:"brand_email,omitempty"`
}

func (s *InviteService) ValidateInvite(ctx context.Context, params *ValidateInviteParams) (*ValidateInviteResult, error) {
	res, err := s.uc.Validate(ctx, params.code())
	if err != nil {
		return nil, toAPIError(err)
	}
	return &ValidateInviteResult{
		Valid:      res.Valid,
		Reason:     res.Reason,
		StylistID:  res.StylistID,
		BrandName:  res.BrandName,
		BrandEmail: res.BrandEmail,
	}, nil
}
