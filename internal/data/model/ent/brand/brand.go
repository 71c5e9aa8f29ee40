// Code generated by ent, DO NOT EDIT.

package brand

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the brand type in the database.
	Label = "brand"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldBrandName holds the string denoting the brand_name field in the database.
	FieldBrandName = "brand_name"
	// FieldBusinessModel holds the string denoting the business_model field in the database.
	FieldBusinessModel = "business_model"
	// FieldPriceRange holds the string denoting the price_range field in the database.
	FieldPriceRange = "price_range"
	// FieldTargetAudience holds the string denoting the target_audience field in the database.
	FieldTargetAudience = "target_audience"
	// FieldMainChallenges holds the string denoting the main_challenges field in the database.
	FieldMainChallenges = "main_challenges"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the brand in the database.
	Table = "brands"
)

// Columns holds all SQL columns for brand fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldBrandName,
	FieldBusinessModel,
	FieldPriceRange,
	FieldTargetAudience,
	FieldMainChallenges,
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
	// BrandNameValidator is a validator for the "brand_name" field. It is called by the builders before save.
	BrandNameValidator func(string) error
	// BusinessModelValidator is a validator for the "business_model" field. It is called by the builders before save.
	BusinessModelValidator func(string) error
	// PriceRangeValidator is a validator for the "price_range" field. It is called by the builders before save.
	PriceRangeValidator func(string) error
	// TargetAudienceValidator is a validator for the "target_audience" field. It is called by the builders before save.
	TargetAudienceValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Brand queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByBrandName orders the results by the brand_name field.
func ByBrandName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandName, opts...).ToFunc()
}

// ByBusinessModel orders the results by the business_model field.
func ByBusinessModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessModel, opts...).ToFunc()
}

// ByPriceRange orders the results by the price_range field.
func ByPriceRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceRange, opts...).ToFunc()
}

// ByTargetAudience orders the results by the target_audience field.
func ByTargetAudience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAudience, opts...).ToFunc()
}

// ByMainChallenges orders the results by the main_challenges field.
func ByMainChallenges(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMainChallenges, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
