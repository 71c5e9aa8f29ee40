// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "disabled", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_email",
				Unique:  true,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
		},
	}
	// BrandsColumns holds the columns for the "brands" table.
	BrandsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeInt},
		{Name: "brand_name", Type: field.TypeString, Size: 255},
		{Name: "business_model", Type: field.TypeString, Size: 32},
		{Name: "price_range", Type: field.TypeString, Size: 32},
		{Name: "target_audience", Type: field.TypeString, Size: 32},
		{Name: "main_challenges", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BrandsTable holds the schema information for the "brands" table.
	BrandsTable = &schema.Table{
		Name:       "brands",
		Columns:    BrandsColumns,
		PrimaryKey: []*schema.Column{BrandsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "brand_profile_id",
				Unique:  true,
				Columns: []*schema.Column{BrandsColumns[1]},
			},
		},
	}
	// InvitesColumns holds the columns for the "invites" table.
	InvitesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Size: 32},
		{Name: "brand_name", Type: field.TypeString, Size: 255},
		{Name: "brand_email", Type: field.TypeString, Size: 255},
		{Name: "stylist_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "used", "expired"}, Default: "pending"},
		{Name: "brand_id", Type: field.TypeInt, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvitesTable holds the schema information for the "invites" table.
	InvitesTable = &schema.Table{
		Name:       "invites",
		Columns:    InvitesColumns,
		PrimaryKey: []*schema.Column{InvitesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invite_code",
				Unique:  true,
				Columns: []*schema.Column{InvitesColumns[1]},
			},
			{
				Name:    "invite_stylist_id",
				Unique:  false,
				Columns: []*schema.Column{InvitesColumns[4]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_id", Type: field.TypeInt},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "user_type", Type: field.TypeEnum, Enums: []string{"brand", "stylist"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_account_id",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// StylistsColumns holds the columns for the "stylists" table.
	StylistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeInt},
		{Name: "experience", Type: field.TypeString, Size: 64},
		{Name: "portfolio_url", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "specialties", Type: field.TypeJSON, Nullable: true},
		{Name: "premium_access", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StylistsTable holds the schema information for the "stylists" table.
	StylistsTable = &schema.Table{
		Name:       "stylists",
		Columns:    StylistsColumns,
		PrimaryKey: []*schema.Column{StylistsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stylist_profile_id",
				Unique:  true,
				Columns: []*schema.Column{StylistsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		BrandsTable,
		InvitesTable,
		ProfilesTable,
		StylistsTable,
	}
)

func init() {
}
