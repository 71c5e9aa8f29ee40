// server/internal/server/http.go
package server

import (
	"context"
	stdhttp "net/http"
	"os"
	"path/filepath"

	httpx "github.com/go-kratos/kratos/v2/transport/http"

	"fforecasting/server/internal/conf"
	"fforecasting/server/internal/data"
	"fforecasting/server/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"go.opentelemetry.io/otel/sdk/trace"
)

// 中间件链里的 operation 名，日志和 tracing 按它聚合
const (
	opAuthRegister    = "/fforecasting.auth/Register"
	opAuthLogin       = "/fforecasting.auth/Login"
	opInviteCreate    = "/fforecasting.invite/Create"
	opInviteList      = "/fforecasting.invite/List"
	opRPC             = "/fforecasting.rpc/Handle"
	opRegisterBrand   = "/fforecasting.registration/RedeemBrand"
	opRegisterStylist = "/fforecasting.registration/RegisterStylist"
	opProfileGet      = "/fforecasting.registration/GetProfile"
)

func NewHTTPServer(
	c *conf.Server,
	logger log.Logger,
	authSvc *service.AuthService,
	inviteSvc *service.InviteService,
	regSvc *service.RegistrationService,
	rpcSvc *service.RPCService,
	tp *trace.TracerProvider,
	data *data.Data,

	// Data 配置（JWT secret 给鉴权中间件用）
	dc *conf.Data,
) *httpx.Server {
	var opts = []httpx.ServerOption{
		httpx.Middleware(
			recovery.Recovery(),
			logging.Server(log.With(logger, "logger.name", "server.http")),
			// 默认 bbr limiter
			ratelimit.Server(),
			// 从请求头解析 JWT 成 AuthClaims 放进 context，不做授权
			AuthClaimsMiddleware(dc, logger),
		),
	}

	if c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, httpx.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, httpx.Address(c.Http.Addr))
		}
		if t := c.Http.Timeout(); t > 0 {
			opts = append(opts, httpx.Timeout(t))
		}
	}

	opts = append(opts, httpx.Logger(logger))

	srv := httpx.NewServer(opts...)

	// ===== 业务路由 =====
	registerRoutes(srv, authSvc, inviteSvc, regSvc, rpcSvc)

	// ===== 探活接口 =====
	// /ping：最简单的活跃检测
	srv.Handle("/ping", stdhttp.HandlerFunc(
		func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusOK)
			_, _ = w.Write([]byte("pong"))
		},
	))

	// /healthz：简单健康检查
	srv.Handle("/healthz", stdhttp.HandlerFunc(
		func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusOK)
			_, _ = w.Write([]byte("ok"))
		}),
	)

	// /readyz：检查下游依赖是否就绪（MySQL 等）
	srv.Handle("/readyz", stdhttp.HandlerFunc(
		func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			ctx := r.Context()

			if data.SQLDB() != nil {
				if err := data.SQLDB().PingContext(ctx); err != nil {
					w.WriteHeader(stdhttp.StatusServiceUnavailable)
					_, _ = w.Write([]byte("mysql not ready"))
					return
				}
			}

			w.WriteHeader(stdhttp.StatusOK)
			_, _ = w.Write([]byte("ready"))
		}),
	)

	// ===== 静态前端：Vite build 产物 =====
	// /invite/{code} 这类前端路由也靠这里的 SPA 回退落到 index.html
	registerStatic(srv)

	return srv
}

func registerRoutes(
	srv *httpx.Server,
	authSvc *service.AuthService,
	inviteSvc *service.InviteService,
	regSvc *service.RegistrationService,
	rpcSvc *service.RPCService,
) {
	r := srv.Route("/")

	r.POST("/api/auth/register", func(ctx httpx.Context) error {
		var in service.RegisterRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		httpx.SetOperation(ctx, opAuthRegister)
		h := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return authSvc.Register(c, req.(*service.RegisterRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(stdhttp.StatusOK, out)
	})

	r.POST("/api/auth/login", func(ctx httpx.Context) error {
		var in service.LoginRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		httpx.SetOperation(ctx, opAuthLogin)
		h := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return authSvc.Login(c, req.(*service.LoginRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(stdhttp.StatusOK, out)
	})

	r.POST("/api/invites", func(ctx httpx.Context) error {
		var in service.CreateInviteRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		httpx.SetOperation(ctx, opInviteCreate)
		h := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return inviteSvc.CreateInvite(c, req.(*service.CreateInviteRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(stdhttp.StatusCreated, out)
	})

	r.GET("/api/invites", func(ctx httpx.Context) error {
		httpx.SetOperation(ctx, opInviteList)
		h := ctx.Middleware(func(c context.Context, _ any) (any, error) {
			return inviteSvc.ListInvites(c)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.Result(stdhttp.StatusOK, out)
	})

	r.POST("/rpc", func(ctx httpx.Context) error {
		var in service.RPCRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		httpx.SetOperation(ctx, opRPC)
		h := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return rpcSvc.Handle(c, req.(*service.RPCRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(stdhttp.StatusOK, out)
	})

	r.POST("/api/register/brand", func(ctx httpx.Context) error {
		var in service.RedeemBrandRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		httpx.SetOperation(ctx, opRegisterBrand)
		h := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return regSvc.RedeemBrand(c, req.(*service.RedeemBrandRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(stdhttp.StatusOK, out)
	})

	r.POST("/api/register/stylist", func(ctx httpx.Context) error {
		var in service.RegisterStylistRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		httpx.SetOperation(ctx, opRegisterStylist)
		h := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return regSvc.RegisterStylist(c, req.(*service.RegisterStylistRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(stdhttp.StatusCreated, out)
	})

	r.GET("/api/profile", func(ctx httpx.Context) error {
		httpx.SetOperation(ctx, opProfileGet)
		h := ctx.Middleware(func(c context.Context, _ any) (any, error) {
			return regSvc.GetProfile(c)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.Result(stdhttp.StatusOK, out)
	})
}

func registerStatic(srv *httpx.Server) {
	// 优先用环境变量 STATIC_DIR，没有的话默认 /app/public（容器内）
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "/app/public"
	}

	fi, err := os.Stat(staticDir)
	if err != nil || !fi.IsDir() {
		log.Infof("http static dir not found or not dir: %s, skip static handler", staticDir)
		return
	}

	log.Infof("http static dir enabled: %s", staticDir)

	fileServer := stdhttp.FileServer(stdhttp.Dir(staticDir))

	// 兼容 React Router BrowserRouter：
	// - 请求路径对应的文件存在 → 直接返回文件
	// - 否则 → 回退到 index.html，由前端路由接管（/invite/{code} 走这里）
	srv.HandlePrefix("/", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		path := r.URL.Path
		if path == "" || path == "/" {
			fileServer.ServeHTTP(w, r)
			return
		}

		fp := filepath.Join(staticDir, filepath.Clean(path))

		if fi, err := os.Stat(fp); err == nil && !fi.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		indexPath := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(indexPath); err == nil {
			stdhttp.ServeFile(w, r, indexPath)
			return
		}

		stdhttp.NotFound(w, r)
	}))
}
