// server/internal/data/model/schema/stylist.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Stylist struct {
	ent.Schema
}

func (Stylist) Fields() []ent.Field {
	return []ent.Field{
		field.Int("profile_id").
			Comment("一对一挂在 profile 上"),
		field.String("experience").
			NotEmpty().
			MaxLen(64),
		field.String("portfolio_url").
			Optional().
			MaxLen(512),
		field.JSON("specialties", []string{}).
			Optional(),
		field.Bool("premium_access").
			Default(false).
			Comment("靠成功邀请解锁，阈值规则待定，目前没有写路径"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Stylist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id").Unique(),
	}
}
