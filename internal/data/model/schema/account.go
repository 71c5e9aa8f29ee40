// server/internal/data/model/schema/account.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Account struct {
	ent.Schema
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			MaxLen(255).
			Comment("登录身份，区分大小写保存"),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.Bool("disabled").
			Default(false),
		field.Time("last_login_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
