// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fforecasting/server/internal/data/model/ent/predicate"
	"fforecasting/server/internal/data/model/ent/stylist"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// StylistUpdate is the builder for updating Stylist entities.
type StylistUpdate struct {
	config
	hooks    []Hook
	mutation *StylistMutation
}

// Where appends a list predicates to the StylistUpdate builder.
func (_u *StylistUpdate) Where(ps ...predicate.Stylist) *StylistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *StylistUpdate) SetProfileID(v int) *StylistUpdate {
	_u.mutation.ResetProfileID()
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *StylistUpdate) SetNillableProfileID(v *int) *StylistUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// AddProfileID adds value to the "profile_id" field.
func (_u *StylistUpdate) AddProfileID(v int) *StylistUpdate {
	_u.mutation.AddProfileID(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *StylistUpdate) SetExperience(v string) *StylistUpdate {
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *StylistUpdate) SetNillableExperience(v *string) *StylistUpdate {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// SetPortfolioURL sets the "portfolio_url" field.
func (_u *StylistUpdate) SetPortfolioURL(v string) *StylistUpdate {
	_u.mutation.SetPortfolioURL(v)
	return _u
}

// SetNillablePortfolioURL sets the "portfolio_url" field if the given value is not nil.
func (_u *StylistUpdate) SetNillablePortfolioURL(v *string) *StylistUpdate {
	if v != nil {
		_u.SetPortfolioURL(*v)
	}
	return _u
}

// ClearPortfolioURL clears the value of the "portfolio_url" field.
func (_u *StylistUpdate) ClearPortfolioURL() *StylistUpdate {
	_u.mutation.ClearPortfolioURL()
	return _u
}

// SetSpecialties sets the "specialties" field.
func (_u *StylistUpdate) SetSpecialties(v []string) *StylistUpdate {
	_u.mutation.SetSpecialties(v)
	return _u
}

// AppendSpecialties appends value to the "specialties" field.
func (_u *StylistUpdate) AppendSpecialties(v []string) *StylistUpdate {
	_u.mutation.AppendSpecialties(v)
	return _u
}

// ClearSpecialties clears the value of the "specialties" field.
func (_u *StylistUpdate) ClearSpecialties() *StylistUpdate {
	_u.mutation.ClearSpecialties()
	return _u
}

// SetPremiumAccess sets the "premium_access" field.
func (_u *StylistUpdate) SetPremiumAccess(v bool) *StylistUpdate {
	_u.mutation.SetPremiumAccess(v)
	return _u
}

// SetNillablePremiumAccess sets the "premium_access" field if the given value is not nil.
func (_u *StylistUpdate) SetNillablePremiumAccess(v *bool) *StylistUpdate {
	if v != nil {
		_u.SetPremiumAccess(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StylistUpdate) SetUpdatedAt(v time.Time) *StylistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StylistMutation object of the builder.
func (_u *StylistUpdate) Mutation() *StylistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StylistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StylistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StylistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StylistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StylistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stylist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StylistUpdate) check() error {
	if v, ok := _u.mutation.Experience(); ok {
		if err := stylist.ExperienceValidator(v); err != nil {
			return &ValidationError{Name: "experience", err: fmt.Errorf(`ent: validator failed for field "Stylist.experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PortfolioURL(); ok {
		if err := stylist.PortfolioURLValidator(v); err != nil {
			return &ValidationError{Name: "portfolio_url", err: fmt.Errorf(`ent: validator failed for field "Stylist.portfolio_url": %w`, err)}
		}
	}
	return nil
}

func (_u *StylistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stylist.Table, stylist.Columns, sqlgraph.NewFieldSpec(stylist.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(stylist.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProfileID(); ok {
		_spec.AddField(stylist.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(stylist.FieldExperience, field.TypeString, value)
	}
	if value, ok := _u.mutation.PortfolioURL(); ok {
		_spec.SetField(stylist.FieldPortfolioURL, field.TypeString, value)
	}
	if _u.mutation.PortfolioURLCleared() {
		_spec.ClearField(stylist.FieldPortfolioURL, field.TypeString)
	}
	if value, ok := _u.mutation.Specialties(); ok {
		_spec.SetField(stylist.FieldSpecialties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stylist.FieldSpecialties, value)
		})
	}
	if _u.mutation.SpecialtiesCleared() {
		_spec.ClearField(stylist.FieldSpecialties, field.TypeJSON)
	}
	if value, ok := _u.mutation.PremiumAccess(); ok {
		_spec.SetField(stylist.FieldPremiumAccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stylist.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stylist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StylistUpdateOne is the builder for updating a single Stylist entity.
type StylistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StylistMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *StylistUpdateOne) SetProfileID(v int) *StylistUpdateOne {
	_u.mutation.ResetProfileID()
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *StylistUpdateOne) SetNillableProfileID(v *int) *StylistUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// AddProfileID adds value to the "profile_id" field.
func (_u *StylistUpdateOne) AddProfileID(v int) *StylistUpdateOne {
	_u.mutation.AddProfileID(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *StylistUpdateOne) SetExperience(v string) *StylistUpdateOne {
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *StylistUpdateOne) SetNillableExperience(v *string) *StylistUpdateOne {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// SetPortfolioURL sets the "portfolio_url" field.
func (_u *StylistUpdateOne) SetPortfolioURL(v string) *StylistUpdateOne {
	_u.mutation.SetPortfolioURL(v)
	return _u
}

// SetNillablePortfolioURL sets the "portfolio_url" field if the given value is not nil.
func (_u *StylistUpdateOne) SetNillablePortfolioURL(v *string) *StylistUpdateOne {
	if v != nil {
		_u.SetPortfolioURL(*v)
	}
	return _u
}

// ClearPortfolioURL clears the value of the "portfolio_url" field.
func (_u *StylistUpdateOne) ClearPortfolioURL() *StylistUpdateOne {
	_u.mutation.ClearPortfolioURL()
	return _u
}

// SetSpecialties sets the "specialties" field.
func (_u *StylistUpdateOne) SetSpecialties(v []string) *StylistUpdateOne {
	_u.mutation.SetSpecialties(v)
	return _u
}

// AppendSpecialties appends value to the "specialties" field.
func (_u *StylistUpdateOne) AppendSpecialties(v []string) *StylistUpdateOne {
	_u.mutation.AppendSpecialties(v)
	return _u
}

// ClearSpecialties clears the value of the "specialties" field.
func (_u *StylistUpdateOne) ClearSpecialties() *StylistUpdateOne {
	_u.mutation.ClearSpecialties()
	return _u
}

// SetPremiumAccess sets the "premium_access" field.
func (_u *StylistUpdateOne) SetPremiumAccess(v bool) *StylistUpdateOne {
	_u.mutation.SetPremiumAccess(v)
	return _u
}

// SetNillablePremiumAccess sets the "premium_access" field if the given value is not nil.
func (_u *StylistUpdateOne) SetNillablePremiumAccess(v *bool) *StylistUpdateOne {
	if v != nil {
		_u.SetPremiumAccess(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StylistUpdateOne) SetUpdatedAt(v time.Time) *StylistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StylistMutation object of the builder.
func (_u *StylistUpdateOne) Mutation() *StylistMutation {
	return _u.mutation
}

// Where appends a list predicates to the StylistUpdate builder.
func (_u *StylistUpdateOne) Where(ps ...predicate.Stylist) *StylistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StylistUpdateOne) Select(field string, fields ...string) *StylistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stylist entity.
func (_u *StylistUpdateOne) Save(ctx context.Context) (*Stylist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StylistUpdateOne) SaveX(ctx context.Context) *Stylist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StylistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StylistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StylistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stylist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StylistUpdateOne) check() error {
	if v, ok := _u.mutation.Experience(); ok {
		if err := stylist.ExperienceValidator(v); err != nil {
			return &ValidationError{Name: "experience", err: fmt.Errorf(`ent: validator failed for field "Stylist.experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PortfolioURL(); ok {
		if err := stylist.PortfolioURLValidator(v); err != nil {
			return &ValidationError{Name: "portfolio_url", err: fmt.Errorf(`ent: validator failed for field "Stylist.portfolio_url": %w`, err)}
		}
	}
	return nil
}

func (_u *StylistUpdateOne) sqlSave(ctx context.Context) (_node *Stylist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stylist.Table, stylist.Columns, sqlgraph.NewFieldSpec(stylist.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stylist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stylist.FieldID)
		for _, f := range fields {
			if !stylist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stylist.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(stylist.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProfileID(); ok {
		_spec.AddField(stylist.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(stylist.FieldExperience, field.TypeString, value)
	}
	if value, ok := _u.mutation.PortfolioURL(); ok {
		_spec.SetField(stylist.FieldPortfolioURL, field.TypeString, value)
	}
	if _u.mutation.PortfolioURLCleared() {
		_spec.ClearField(stylist.FieldPortfolioURL, field.TypeString)
	}
	if value, ok := _u.mutation.Specialties(); ok {
		_spec.SetField(stylist.FieldSpecialties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stylist.FieldSpecialties, value)
		})
	}
	if _u.mutation.SpecialtiesCleared() {
		_spec.ClearField(stylist.FieldSpecialties, field.TypeJSON)
	}
	if value, ok := _u.mutation.PremiumAccess(); ok {
		_spec.SetField(stylist.FieldPremiumAccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stylist.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Stylist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stylist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
