// server/internal/data/data.go
package data

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"fforecasting/server/internal/biz"
	"fforecasting/server/internal/conf"
	"fforecasting/server/internal/data/model/ent"
	entLogger "fforecasting/server/pkg/logger"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/XSAM/otelsql"
	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/wire"
	"go.opentelemetry.io/otel/attribute"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

// ProviderSet 是 data 层对外暴露的依赖注入集合。
var ProviderSet = wire.NewSet(
	NewData,

	// auth
	NewAccountRepo,
	wire.Bind(new(biz.AccountRepo), new(*accountRepo)),
	NewTokenGenerator,
	biz.NewAuthUsecase,

	// invites
	NewInviteRepo,
	wire.Bind(new(biz.InviteRepo), new(*inviteRepo)),
	NewInviteUsecaseProvider,

	// profiles
	NewProfileRepo,
	wire.Bind(new(biz.ProfileRepo), new(*profileRepo)),

	// notify
	NewNotifier,
	wire.Bind(new(biz.Notifier), new(*telegramNotifier)),

	// orchestration
	NewRegistrationUsecaseProvider,
)

// Data 聚合所有外部资源（DB 等）。
type Data struct {
	log   *log.Helper
	mysql *ent.Client
	sqldb *sql.DB
	conf  *conf.Data
}

// SQLDB 返回底层 DB，用于健康检查与原生 SQL 查询。
func (d *Data) SQLDB() *sql.DB {
	return d.sqldb
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// waitForMySQLReady 按固定间隔重试 ping，容器编排下 MySQL 可能比我们晚起来
func waitForMySQLReady(ctx context.Context, p pinger, interval time.Duration, l *log.Helper) error {
	var lastErr error
	for {
		if err := p.PingContext(ctx); err == nil {
			return nil
		} else {
			lastErr = err
			l.Warnf("mysql not ready yet: %v", err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("mysql not ready before timeout: %w (last: %v)", ctx.Err(), lastErr)
		case <-time.After(interval):
		}
	}
}

// NewData 由 wire 调用，用来统一管理资源和 cleanup。
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(log.With(logger, "logger.name", "data"))

	l.Info("init mysql(otelsql) start...")
	db, err := otelsql.Open(
		dialect.MySQL,
		c.Mysql.Dsn,
		otelsql.WithSpanOptions(otelsql.SpanOptions{
			OmitConnResetSession: true,
			OmitConnPrepare:      true,
			OmitConnQuery:        false,
			OmitRows:             true,
			OmitConnectorConnect: true,
		}),
		otelsql.WithAttributesGetter(func(
			ctx context.Context,
			method otelsql.Method,
			query string,
			args []driver.NamedValue,
		) []attribute.KeyValue {
			attrs := make([]attribute.KeyValue, 0, 1+len(args))
			attrs = append(attrs, attribute.String("db.statement", query))
			for _, a := range args {
				key := fmt.Sprintf("db.sql.arg.%d", a.Ordinal)
				if a.Name != "" {
					key = "db.sql.arg." + a.Name
				}
				attrs = append(attrs, attribute.String(key, fmt.Sprint(a.Value)))
			}
			return attrs
		}),
	)
	if err != nil {
		l.Errorf("failed to open mysql connection: %v", err)
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := waitForMySQLReady(pingCtx, db, 2*time.Second, l); err != nil {
		_ = db.Close()
		l.Errorf("mysql ping failed: %v", err)
		return nil, nil, err
	}
	l.Info("init mysql(otelsql) done")

	mysqlClient := ent.NewClient(
		ent.Log(entLogger.NewEntLogger(logger)),
		ent.Driver(entsql.OpenDB(dialect.MySQL, db)),
	)
	if mysqlClient == nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create mysql client")
	}

	if c.Mysql.Debug {
		mysqlClient = mysqlClient.Debug()
	}

	data := &Data{
		log:   l,
		sqldb: db,
		mysql: mysqlClient,
		conf:  c,
	}

	cleanup := func() {
		if mysqlClient != nil {
			mysqlClient.Close()
		}
		if db != nil {
			db.Close()
		}
	}

	return data, cleanup, nil
}

// NewInviteUsecaseProvider 把配置里的有效期喂给 biz 层
func NewInviteUsecaseProvider(repo *inviteRepo, profiles *profileRepo, notifier *telegramNotifier, c *conf.Data, logger log.Logger, tp *tracesdk.TracerProvider) *biz.InviteUsecase {
	return biz.NewInviteUsecase(repo, profiles, notifier, c.Invite.ExpireDuration(), logger, tp)
}

// NewRegistrationUsecaseProvider 同上，喂兑换超时
func NewRegistrationUsecaseProvider(invites *biz.InviteUsecase, repo *inviteRepo, profiles *profileRepo, notifier *telegramNotifier, c *conf.Data, logger log.Logger, tp *tracesdk.TracerProvider) *biz.RegistrationUsecase {
	return biz.NewRegistrationUsecase(invites, repo, profiles, notifier, c.Invite.RedeemTimeout(), logger, tp)
}
