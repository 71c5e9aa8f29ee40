// Code generated by ent, DO NOT EDIT.

package stylist

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stylist type in the database.
	Label = "stylist"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldExperience holds the string denoting the experience field in the database.
	FieldExperience = "experience"
	// FieldPortfolioURL holds the string denoting the portfolio_url field in the database.
	FieldPortfolioURL = "portfolio_url"
	// FieldSpecialties holds the string denoting the specialties field in the database.
	FieldSpecialties = "specialties"
	// FieldPremiumAccess holds the string denoting the premium_access field in the database.
	FieldPremiumAccess = "premium_access"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the stylist in the database.
	Table = "stylists"
)

// Columns holds all SQL columns for stylist fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldExperience,
	FieldPortfolioURL,
	FieldSpecialties,
	FieldPremiumAccess,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ExperienceValidator is a validator for the "experience" field. It is called by the builders before save.
	ExperienceValidator func(string) error
	// PortfolioURLValidator is a validator for the "portfolio_url" field. It is called by the builders before save.
	PortfolioURLValidator func(string) error
	// DefaultPremiumAccess holds the default value on creation for the "premium_access" field.
	DefaultPremiumAccess bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Stylist queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByExperience orders the results by the experience field.
func ByExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperience, opts...).ToFunc()
}

// ByPortfolioURL orders the results by the portfolio_url field.
func ByPortfolioURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPortfolioURL, opts...).ToFunc()
}

// ByPremiumAccess orders the results by the premium_access field.
func ByPremiumAccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPremiumAccess, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
