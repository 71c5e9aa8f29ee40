// server/internal/service/rpc_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

// RPCService 是落地页用的轻量 JSON-RPC 入口（POST /rpc）。
// 匿名可调，方法表只开放白名单里的只读方法。
type RPCService struct {
	invites *InviteService
	log     *log.Helper
}

func NewRPCService(invites *InviteService, logger log.Logger) *RPCService {
	return &RPCService{
		invites: invites,
		log:     log.NewHelper(log.With(logger, "module", "service.rpc")),
	}
}

type RPCRequest struct {
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	ID      string          `json:"id"`
	Params  json.RawMessage `json:"params"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RPCReply struct {
	Jsonrpc string    `json:"jsonrpc"`
	ID      string    `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *RPCError `json:"error,omitempty"`
}

// JSON-RPC 2.0 预定义错误码
const (
	rpcCodeParseError     = -32700
	rpcCodeMethodNotFound = -32601
	rpcCodeInvalidParams  = -32602
	rpcCodeInternal       = -32603
)

func (s *RPCService) Handle(ctx context.Context, req *RPCRequest) (*RPCReply, error) {
	start := time.Now()
	defer func() {
		s.log.WithContext(ctx).Infof("rpc done method=%s id=%s cost=%s", req.Method, req.ID, time.Since(start))
	}()

	reply := &RPCReply{Jsonrpc: "2.0", ID: req.ID}

	switch req.Method {
	case "invite.validate":
		var params ValidateInviteParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			reply.Error = &RPCError{Code: rpcCodeInvalidParams, Message: "invalid params"}
			return reply, nil
		}
		res, err := s.invites.ValidateInvite(ctx, &params)
		if err != nil {
			// 这里只剩存储类故障：无效邀请不是 error，走 result.valid=false
			s.log.WithContext(ctx).Errorf("invite.validate failed id=%s err=%v", req.ID, err)
			reply.Error = &RPCError{Code: rpcCodeInternal, Message: "internal error"}
			return reply, nil
		}
		reply.Result = res
		return reply, nil

	default:
		reply.Error = &RPCError{Code: rpcCodeMethodNotFound, Message: "method not found: " + req.Method}
		return reply, nil
	}
}
