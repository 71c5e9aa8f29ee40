// server/internal/data/notify.go
package data

import (
	"context"

	"fforecasting/server/internal/biz"
	"fforecasting/server/internal/conf"
	"fforecasting/server/pkg/telegram"
	"fforecasting/server/pkg/threading"

	"github.com/go-kratos/kratos/v2/log"
)

// telegramNotifier 把邀请事件推到运营群。发送走托管 goroutine，
// 不阻塞请求路径；发送失败只记日志，绝不影响业务结果。
type telegramNotifier struct {
	enabled bool
	log     *log.Helper
}

func NewNotifier(c *conf.Data, logger log.Logger) *telegramNotifier {
	enabled := c != nil && c.Notify != nil && c.Notify.TelegramEnabled
	return &telegramNotifier{
		enabled: enabled,
		log:     log.NewHelper(log.With(logger, "module", "data.notify")),
	}
}

var _ biz.Notifier = (*telegramNotifier)(nil)

func (n *telegramNotifier) InviteCreated(ctx context.Context, inv *biz.Invite) {
	if !n.enabled {
		return
	}

	brandName, code := inv.BrandName, inv.Code
	threading.Go(ctx, func(ctx context.Context) {
		if err := telegram.NotifyInviteCreated(brandName, code); err != nil {
			n.log.WithContext(ctx).Warnf("telegram invite-created notify failed code=%s err=%v", code, err)
		}
	})
}

func (n *telegramNotifier) InviteRedeemed(ctx context.Context, inv *biz.Invite, brandID int) {
	if !n.enabled {
		return
	}

	brandName, code := inv.BrandName, inv.Code
	threading.Go(ctx, func(ctx context.Context) {
		if err := telegram.NotifyInviteRedeemed(brandName, code, brandID); err != nil {
			n.log.WithContext(ctx).Warnf("telegram invite-redeemed notify failed code=%s err=%v", code, err)
		}
	})
}
