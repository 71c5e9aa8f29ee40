// 配置结构，由 kratos config 从 yaml 扫描进来
package conf

import "time"

type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	Log    *Log    `json:"log"`
	Trace  *Trace  `json:"trace"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Network        string `json:"network"`
	Addr           string `json:"addr"`
	TimeoutSeconds int64  `json:"timeout_seconds"`
}

func (h *HTTP) Timeout() time.Duration {
	if h == nil || h.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(h.TimeoutSeconds) * time.Second
}

type Data struct {
	Mysql  *Mysql  `json:"mysql"`
	Auth   *Auth   `json:"auth"`
	Invite *Invite `json:"invite"`
	Notify *Notify `json:"notify"`
}

type Mysql struct {
	Dsn   string `json:"dsn"`
	Debug bool   `json:"debug"`
}

type Auth struct {
	JwtSecret        string `json:"jwt_secret"`
	JwtExpireSeconds int64  `json:"jwt_expire_seconds"`
}

type Invite struct {
	// 邀请有效期，默认 30 天
	ExpireDays int `json:"expire_days"`

	// 兑换编排端到端超时，默认 15s
	RedeemTimeoutSeconds int64 `json:"redeem_timeout_seconds"`
}

func (i *Invite) ExpireDuration() time.Duration {
	days := 30
	if i != nil && i.ExpireDays > 0 {
		days = i.ExpireDays
	}
	return time.Duration(days) * 24 * time.Hour
}

func (i *Invite) RedeemTimeout() time.Duration {
	if i == nil || i.RedeemTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(i.RedeemTimeoutSeconds) * time.Second
}

type Notify struct {
	TelegramEnabled bool `json:"telegram_enabled"`
}

type Log struct {
	Debug bool `json:"debug"`
}

type Trace struct {
	Jaeger *Jaeger `json:"jaeger"`
}

type Jaeger struct {
	TraceName string `json:"trace_name"`
	Endpoint  string `json:"endpoint"`
}
