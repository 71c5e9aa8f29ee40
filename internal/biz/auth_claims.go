// server/internal/biz/auth_claims.go
package biz

import "context"

type Role string

const (
	RoleBrand   Role = "brand"
	RoleStylist Role = "stylist"
)

// AuthClaims 是显式的会话上下文对象：登录身份 + 已建档角色，
// 由中间件解析 JWT 后塞进 ctx，编排层从 ctx 取，不走全局单例。
type AuthClaims struct {
	AccountID int
	Email     string
	Role      Role // "" 表示已登录但还没建档
}

type ctxKeyClaims struct{}

func NewContextWithClaims(ctx context.Context, c *AuthClaims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims{}, c)
}

func GetClaimsFromContext(ctx context.Context) (*AuthClaims, bool) {
	c, ok := ctx.Value(ctxKeyClaims{}).(*AuthClaims)
	return c, ok
}

func (c *AuthClaims) IsStylist() bool {
	return c != nil && c.Role == RoleStylist
}

func (c *AuthClaims) IsBrand() bool {
	return c != nil && c.Role == RoleBrand
}

type ctxKeyAuthState struct{}

type AuthState int

const (
	AuthNone AuthState = iota
	AuthOK
	AuthExpired
	AuthInvalid
)

func WithAuthState(ctx context.Context, st AuthState) context.Context {
	return context.WithValue(ctx, ctxKeyAuthState{}, st)
}

func AuthStateFrom(ctx context.Context) AuthState {
	if x, ok := ctx.Value(ctxKeyAuthState{}).(AuthState); ok {
		return x
	}
	return AuthNone
}
