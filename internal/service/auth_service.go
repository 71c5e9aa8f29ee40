// server/internal/service/auth_service.go
package service

import (
	"context"

	"fforecasting/server/internal/biz"
)

type AuthService struct {
	uc *biz.AuthUsecase
}

func NewAuthService(uc *biz.AuthUsecase) *AuthService {
	return &AuthService{uc: uc}
}

// POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthReply struct {
	AccountID   int    `json:"account_id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // Unix 时间戳
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthReply, error) {
	token, expiresAt, acc, err := s.uc.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &AuthReply{
		AccountID:   acc.ID,
		Email:       acc.Email,
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}

// POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthReply, error) {
	token, expiresAt, acc, err := s.uc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &AuthReply{
		AccountID:   acc.ID,
		Email:       acc.Email,
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}
