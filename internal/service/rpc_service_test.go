// server/internal/service/rpc_service_test.go
package service

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"fforecasting/server/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

// 只实现 RPC 入口用得到的查路径，其余按“空库”处理
type stubInviteRepo struct {
	byCode map[string]*biz.Invite
}

func (r *stubInviteRepo) CreateInvite(ctx context.Context, inv *biz.Invite) (*biz.Invite, error) {
	return inv, nil
}

func (r *stubInviteRepo) GetInviteByCode(ctx context.Context, code string) (*biz.Invite, error) {
	inv, ok := r.byCode[code]
	if !ok {
		return nil, biz.ErrInviteNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *stubInviteRepo) MarkInviteUsed(ctx context.Context, code string, brandID int) (*biz.Invite, error) {
	return nil, biz.ErrInviteNotFound
}

func (r *stubInviteRepo) ListInvitesByStylist(ctx context.Context, stylistID int) ([]*biz.Invite, error) {
	return nil, nil
}

type stubProfileRepo struct{}

func (stubProfileRepo) GetProfileByAccount(ctx context.Context, accountID int) (*biz.Profile, error) {
	return nil, biz.ErrProfileNotFound
}
func (stubProfileRepo) UpsertProfile(ctx context.Context, p *biz.Profile) (*biz.Profile, error) {
	return p, nil
}
func (stubProfileRepo) GetBrandByProfile(ctx context.Context, profileID int) (*biz.Brand, error) {
	return nil, biz.ErrBrandNotFound
}
func (stubProfileRepo) CreateBrand(ctx context.Context, b *biz.Brand) (*biz.Brand, error) {
	return b, nil
}
func (stubProfileRepo) GetStylistByProfile(ctx context.Context, profileID int) (*biz.Stylist, error) {
	return nil, biz.ErrStylistNotFound
}
func (stubProfileRepo) CreateStylist(ctx context.Context, s *biz.Stylist) (*biz.Stylist, error) {
	return s, nil
}

func newRPCServiceForTest(repo *stubInviteRepo) *RPCService {
	logger := log.NewStdLogger(io.Discard)
	tp := tracesdk.NewTracerProvider()
	uc := biz.NewInviteUsecase(repo, stubProfileRepo{}, nil, 30*24*time.Hour, logger, tp)
	return NewRPCService(NewInviteService(uc, logger), logger)
}

func TestRPCService_ValidateInvite(t *testing.T) {
	repo := &stubInviteRepo{byCode: map[string]*biz.Invite{
		"ABCDEF123456": {
			ID: 1, Code: "ABCDEF123456", Status: biz.InviteStatusPending,
			StylistID: 7, BrandName: "Casa Verde", BrandEmail: "owner@casaverde.com",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	svc := newRPCServiceForTest(repo)

	reply, err := svc.Handle(context.Background(), &RPCRequest{
		Jsonrpc: "2.0",
		Method:  "invite.validate",
		ID:      "1",
		Params:  json.RawMessage(`{"invite_code":"ABCDEF123456"}`),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Error != nil {
		t.Fatalf("unexpected rpc error: %+v", reply.Error)
	}
	res, ok := reply.Result.(*ValidateInviteResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", reply.Result)
	}
	if !res.Valid || res.BrandName != "Casa Verde" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.StylistID != 7 {
		t.Fatalf("stylist_id = %d, want 7", res.StylistID)
	}
}

// 旧客户端还在发 code 键，两种键都要能用
func TestRPCService_ValidateInvite_LegacyCodeKey(t *testing.T) {
	repo := &stubInviteRepo{byCode: map[string]*biz.Invite{
		"ABCDEF123456": {
			ID: 1, Code: "ABCDEF123456", Status: biz.InviteStatusPending,
			StylistID: 7, BrandName: "Casa Verde", BrandEmail: "owner@casaverde.com",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	svc := newRPCServiceForTest(repo)

	reply, err := svc.Handle(context.Background(), &RPCRequest{
		Jsonrpc: "2.0",
		Method:  "invite.validate",
		ID:      "1b",
		Params:  json.RawMessage(`{"code":"ABCDEF123456"}`),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Error != nil {
		t.Fatalf("unexpected rpc error: %+v", reply.Error)
	}
	res := reply.Result.(*ValidateInviteResult)
	if !res.Valid || res.StylistID != 7 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRPCService_ValidateInvite_InvalidIsResultNotError(t *testing.T) {
	svc := newRPCServiceForTest(&stubInviteRepo{byCode: map[string]*biz.Invite{}})

	reply, err := svc.Handle(context.Background(), &RPCRequest{
		Jsonrpc: "2.0",
		Method:  "invite.validate",
		ID:      "2",
		Params:  json.RawMessage(`{"invite_code":"NOSUCHCODE00"}`),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Error != nil {
		t.Fatalf("invalid invite must not be an rpc error: %+v", reply.Error)
	}
	res := reply.Result.(*ValidateInviteResult)
	if res.Valid || res.Reason != "not_found" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRPCService_MethodNotFound(t *testing.T) {
	svc := newRPCServiceForTest(&stubInviteRepo{byCode: map[string]*biz.Invite{}})

	reply, err := svc.Handle(context.Background(), &RPCRequest{
		Jsonrpc: "2.0",
		Method:  "invite.revoke",
		ID:      "3",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Error == nil || reply.Error.Code != rpcCodeMethodNotFound {
		t.Fatalf("expected method-not-found, got %+v", reply.Error)
	}
}

func TestRPCService_InvalidParams(t *testing.T) {
	svc := newRPCServiceForTest(&stubInviteRepo{byCode: map[string]*biz.Invite{}})

	reply, err := svc.Handle(context.Background(), &RPCRequest{
		Jsonrpc: "2.0",
		Method:  "invite.validate",
		ID:      "4",
		Params:  json.RawMessage(`"not-an-object"`),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Error == nil || reply.Error.Code != rpcCodeInvalidParams {
		t.Fatalf("expected invalid-params, got %+v", reply.Error)
	}
}
