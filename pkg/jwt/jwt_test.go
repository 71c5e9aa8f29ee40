package jwtutil

import (
	"testing"
	"time"
)

func TestNewToken_ParseRoundTrip(t *testing.T) {
	cfg := Config{
		Secret:         []byte("test-secret"),
		ExpireDuration: time.Hour,
	}

	tok, exp, err := NewToken(cfg, 42, "ana@example.com", "brand")
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	if exp.Before(time.Now()) {
		t.Fatalf("unexpected expireAt: %v", exp)
	}

	claims, err := ParseToken(cfg.Secret, tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.AccountID != 42 || claims.Email != "ana@example.com" || claims.Role != "brand" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	cfg := Config{Secret: []byte("right"), ExpireDuration: time.Hour}

	tok, _, err := NewToken(cfg, 1, "x@y.com", "")
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}

	if _, err := ParseToken([]byte("wrong"), tok); err == nil {
		t.Fatalf("expected error with wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	cfg := Config{Secret: []byte("s"), ExpireDuration: -time.Minute}

	tok, _, err := NewToken(cfg, 1, "x@y.com", "")
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}

	if _, err := ParseToken(cfg.Secret, tok); err == nil {
		t.Fatalf("expected expired token error")
	}
}
