// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fforecasting/server/internal/data/model/ent/brand"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Brand is the model entity for the Brand schema.
type Brand struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// 一对一挂在 profile 上
	ProfileID int `json:"profile_id,omitempty"`
	// BrandName holds the value of the "brand_name" field.
	BrandName string `json:"brand_name,omitempty"`
	// BusinessModel holds the value of the "business_model" field.
	BusinessModel string `json:"business_model,omitempty"`
	// PriceRange holds the value of the "price_range" field.
	PriceRange string `json:"price_range,omitempty"`
	// TargetAudience holds the value of the "target_audience" field.
	TargetAudience string `json:"target_audience,omitempty"`
	// MainChallenges holds the value of the "main_challenges" field.
	MainChallenges string `json:"main_challenges,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Brand) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case brand.FieldID, brand.FieldProfileID:
			values[i] = new(sql.NullInt64)
		case brand.FieldBrandName, brand.FieldBusinessModel, brand.FieldPriceRange, brand.FieldTargetAudience, brand.FieldMainChallenges:
			values[i] = new(sql.NullString)
		case brand.FieldCreatedAt, brand.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Brand fields.
func (_m *Brand) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case brand.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case brand.FieldProfileID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = int(value.Int64)
			}
		case brand.FieldBrandName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_name", values[i])
			} else if value.Valid {
				_m.BrandName = value.String
			}
		case brand.FieldBusinessModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_model", values[i])
			} else if value.Valid {
				_m.BusinessModel = value.String
			}
		case brand.FieldPriceRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price_range", values[i])
			} else if value.Valid {
				_m.PriceRange = value.String
			}
		case brand.FieldTargetAudience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_audience", values[i])
			} else if value.Valid {
				_m.TargetAudience = value.String
			}
		case brand.FieldMainChallenges:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field main_challenges", values[i])
			} else if value.Valid {
				_m.MainChallenges = value.String
			}
		case brand.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case brand.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Brand.
// This includes values selected through modifiers, order, etc.
func (_m *Brand) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Brand.
// Note that you need to call Brand.Unwrap() before calling this method if this Brand
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Brand) Update() *BrandUpdateOne {
	return NewBrandClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Brand entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Brand) Unwrap() *Brand {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Brand is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Brand) String() string {
	var builder strings.Builder
	builder.WriteString("Brand(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("brand_name=")
	builder.WriteString(_m.BrandName)
	builder.WriteString(", ")
	builder.WriteString("business_model=")
	builder.WriteString(_m.BusinessModel)
	builder.WriteString(", ")
	builder.WriteString("price_range=")
	builder.WriteString(_m.PriceRange)
	builder.WriteString(", ")
	builder.WriteString("target_audience=")
	builder.WriteString(_m.TargetAudience)
	builder.WriteString(", ")
	builder.WriteString("main_challenges=")
	builder.WriteString(_m.MainChallenges)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Brands is a parsable slice of Brand.
type Brands []*Brand
