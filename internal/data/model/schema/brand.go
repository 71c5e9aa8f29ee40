// server/internal/data/model/schema/brand.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Brand struct {
	ent.Schema
}

func (Brand) Fields() []ent.Field {
	return []ent.Field{
		field.Int("profile_id").
			Comment("一对一挂在 profile 上"),
		field.String("brand_name").
			NotEmpty().
			MaxLen(255),
		// 取值集合在 biz 层用 validator 的 oneof 把关，
		// 这里存字符串，避免 "60+_anos" 这类值生成不了合法标识符
		field.String("business_model").
			NotEmpty().
			MaxLen(32),
		field.String("price_range").
			NotEmpty().
			MaxLen(32),
		field.String("target_audience").
			NotEmpty().
			MaxLen(32),
		field.Text("main_challenges").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Brand) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id").Unique(),
	}
}
