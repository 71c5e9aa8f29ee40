// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fforecasting/server/internal/data/model/ent/stylist"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Stylist is the model entity for the Stylist schema.
type Stylist struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// 一对一挂在 profile 上
	ProfileID int `json:"profile_id,omitempty"`
	// Experience holds the value of the "experience" field.
	Experience string `json:"experience,omitempty"`
	// PortfolioURL holds the value of the "portfolio_url" field.
	PortfolioURL string `json:"portfolio_url,omitempty"`
	// Specialties holds the value of the "specialties" field.
	Specialties []string `json:"specialties,omitempty"`
	// 靠成功邀请解锁，阈值规则待定，目前没有写路径
	PremiumAccess bool `json:"premium_access,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Stylist) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stylist.FieldSpecialties:
			values[i] = new([]byte)
		case stylist.FieldPremiumAccess:
			values[i] = new(sql.NullBool)
		case stylist.FieldID, stylist.FieldProfileID:
			values[i] = new(sql.NullInt64)
		case stylist.FieldExperience, stylist.FieldPortfolioURL:
			values[i] = new(sql.NullString)
		case stylist.FieldCreatedAt, stylist.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Stylist fields.
func (_m *Stylist) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stylist.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stylist.FieldProfileID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = int(value.Int64)
			}
		case stylist.FieldExperience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experience", values[i])
			} else if value.Valid {
				_m.Experience = value.String
			}
		case stylist.FieldPortfolioURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field portfolio_url", values[i])
			} else if value.Valid {
				_m.PortfolioURL = value.String
			}
		case stylist.FieldSpecialties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field specialties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Specialties); err != nil {
					return fmt.Errorf("unmarshal field specialties: %w", err)
				}
			}
		case stylist.FieldPremiumAccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field premium_access", values[i])
			} else if value.Valid {
				_m.PremiumAccess = value.Bool
			}
		case stylist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stylist.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Stylist.
// This includes values selected through modifiers, order, etc.
func (_m *Stylist) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Stylist.
// Note that you need to call Stylist.Unwrap() before calling this method if this Stylist
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Stylist) Update() *StylistUpdateOne {
	return NewStylistClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Stylist entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Stylist) Unwrap() *Stylist {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Stylist is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Stylist) String() string {
	var builder strings.Builder
	builder.WriteString("Stylist(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("experience=")
	builder.WriteString(_m.Experience)
	builder.WriteString(", ")
	builder.WriteString("portfolio_url=")
	builder.WriteString(_m.PortfolioURL)
	builder.WriteString(", ")
	builder.WriteString("specialties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Specialties))
	builder.WriteString(", ")
	builder.WriteString("premium_access=")
	builder.WriteString(fmt.Sprintf("%v", _m.PremiumAccess))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Stylists is a parsable slice of Stylist.
type Stylists []*Stylist
