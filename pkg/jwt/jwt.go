package jwtutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	AccountID int    `json:"aid"`
	Email     string `json:"email"`

	// brand / stylist / ""（账号已注册但还没建档）
	Role string `json:"role"`

	jwt.RegisteredClaims
}

type Config struct {
	Secret         []byte        // HMAC 秘钥
	ExpireDuration time.Duration // 过期时间，比如 7 * 24 * time.Hour
}

func NewToken(cfg Config, accountID int, email, role string) (string, time.Time, error) {
	expireAt := time.Now().Add(cfg.ExpireDuration)

	claims := &Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expireAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   "access_token",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expireAt, nil
}

func ParseToken(secret []byte, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
