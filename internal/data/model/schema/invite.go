// server/internal/data/model/schema/invite.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Invite 对应 brand_invites：造型师发给品牌的一次性注册邀请。
// 记录永不删除，过期靠 expires_at 推导。
type Invite struct {
	ent.Schema
}

func (Invite) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			NotEmpty().
			MaxLen(32).
			Comment("12 位 [A-Z0-9]，唯一索引是防碰撞的最终保证"),
		field.String("brand_name").
			NotEmpty().
			MaxLen(255),
		field.String("brand_email").
			NotEmpty().
			MaxLen(255).
			Comment("兑换时必须和登录邮箱完全一致（区分大小写）"),
		field.Int("stylist_id").
			Comment("发起邀请的造型师"),
		field.Enum("status").
			Values("pending", "accepted", "used", "expired").
			Default("pending"),
		field.Int("brand_id").
			Optional().
			Nillable().
			Comment("兑换成功后回填"),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Invite) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code").Unique(),
		index.Fields("stylist_id"),
	}
}
