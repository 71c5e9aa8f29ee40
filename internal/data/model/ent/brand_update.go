// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fforecasting/server/internal/data/model/ent/brand"
	"fforecasting/server/internal/data/model/ent/predicate"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BrandUpdate is the builder for updating Brand entities.
type BrandUpdate struct {
	config
	hooks    []Hook
	mutation *BrandMutation
}

// Where appends a list predicates to the BrandUpdate builder.
func (_u *BrandUpdate) Where(ps ...predicate.Brand) *BrandUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *BrandUpdate) SetProfileID(v int) *BrandUpdate {
	_u.mutation.ResetProfileID()
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *BrandUpdate) SetNillableProfileID(v *int) *BrandUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// AddProfileID adds value to the "profile_id" field.
func (_u *BrandUpdate) AddProfileID(v int) *BrandUpdate {
	_u.mutation.AddProfileID(v)
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *BrandUpdate) SetBrandName(v string) *BrandUpdate {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *BrandUpdate) SetNillableBrandName(v *string) *BrandUpdate {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// SetBusinessModel sets the "business_model" field.
func (_u *BrandUpdate) SetBusinessModel(v string) *BrandUpdate {
	_u.mutation.SetBusinessModel(v)
	return _u
}

// SetNillableBusinessModel sets the "business_model" field if the given value is not nil.
func (_u *BrandUpdate) SetNillableBusinessModel(v *string) *BrandUpdate {
	if v != nil {
		_u.SetBusinessModel(*v)
	}
	return _u
}

// SetPriceRange sets the "price_range" field.
func (_u *BrandUpdate) SetPriceRange(v string) *BrandUpdate {
	_u.mutation.SetPriceRange(v)
	return _u
}

// SetNillablePriceRange sets the "price_range" field if the given value is not nil.
func (_u *BrandUpdate) SetNillablePriceRange(v *string) *BrandUpdate {
	if v != nil {
		_u.SetPriceRange(*v)
	}
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *BrandUpdate) SetTargetAudience(v string) *BrandUpdate {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *BrandUpdate) SetNillableTargetAudience(v *string) *BrandUpdate {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// SetMainChallenges sets the "main_challenges" field.
func (_u *BrandUpdate) SetMainChallenges(v string) *BrandUpdate {
	_u.mutation.SetMainChallenges(v)
	return _u
}

// SetNillableMainChallenges sets the "main_challenges" field if the given value is not nil.
func (_u *BrandUpdate) SetNillableMainChallenges(v *string) *BrandUpdate {
	if v != nil {
		_u.SetMainChallenges(*v)
	}
	return _u
}

// ClearMainChallenges clears the value of the "main_challenges" field.
func (_u *BrandUpdate) ClearMainChallenges() *BrandUpdate {
	_u.mutation.ClearMainChallenges()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BrandUpdate) SetUpdatedAt(v time.Time) *BrandUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BrandMutation object of the builder.
func (_u *BrandUpdate) Mutation() *BrandMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BrandUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrandUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BrandUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrandUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BrandUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := brand.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrandUpdate) check() error {
	if v, ok := _u.mutation.BrandName(); ok {
		if err := brand.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`ent: validator failed for field "Brand.brand_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessModel(); ok {
		if err := brand.BusinessModelValidator(v); err != nil {
			return &ValidationError{Name: "business_model", err: fmt.Errorf(`ent: validator failed for field "Brand.business_model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceRange(); ok {
		if err := brand.PriceRangeValidator(v); err != nil {
			return &ValidationError{Name: "price_range", err: fmt.Errorf(`ent: validator failed for field "Brand.price_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetAudience(); ok {
		if err := brand.TargetAudienceValidator(v); err != nil {
			return &ValidationError{Name: "target_audience", err: fmt.Errorf(`ent: validator failed for field "Brand.target_audience": %w`, err)}
		}
	}
	return nil
}

func (_u *BrandUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(brand.Table, brand.Columns, sqlgraph.NewFieldSpec(brand.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(brand.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProfileID(); ok {
		_spec.AddField(brand.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(brand.FieldBrandName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessModel(); ok {
		_spec.SetField(brand.FieldBusinessModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceRange(); ok {
		_spec.SetField(brand.FieldPriceRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(brand.FieldTargetAudience, field.TypeString, value)
	}
	if value, ok := _u.mutation.MainChallenges(); ok {
		_spec.SetField(brand.FieldMainChallenges, field.TypeString, value)
	}
	if _u.mutation.MainChallengesCleared() {
		_spec.ClearField(brand.FieldMainChallenges, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(brand.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{brand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BrandUpdateOne is the builder for updating a single Brand entity.
type BrandUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BrandMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *BrandUpdateOne) SetProfileID(v int) *BrandUpdateOne {
	_u.mutation.ResetProfileID()
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillableProfileID(v *int) *BrandUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// AddProfileID adds value to the "profile_id" field.
func (_u *BrandUpdateOne) AddProfileID(v int) *BrandUpdateOne {
	_u.mutation.AddProfileID(v)
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *BrandUpdateOne) SetBrandName(v string) *BrandUpdateOne {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillableBrandName(v *string) *BrandUpdateOne {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// SetBusinessModel sets the "business_model" field.
func (_u *BrandUpdateOne) SetBusinessModel(v string) *BrandUpdateOne {
	_u.mutation.SetBusinessModel(v)
	return _u
}

// SetNillableBusinessModel sets the "business_model" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillableBusinessModel(v *string) *BrandUpdateOne {
	if v != nil {
		_u.SetBusinessModel(*v)
	}
	return _u
}

// SetPriceRange sets the "price_range" field.
func (_u *BrandUpdateOne) SetPriceRange(v string) *BrandUpdateOne {
	_u.mutation.SetPriceRange(v)
	return _u
}

// SetNillablePriceRange sets the "price_range" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillablePriceRange(v *string) *BrandUpdateOne {
	if v != nil {
		_u.SetPriceRange(*v)
	}
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *BrandUpdateOne) SetTargetAudience(v string) *BrandUpdateOne {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillableTargetAudience(v *string) *BrandUpdateOne {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// SetMainChallenges sets the "main_challenges" field.
func (_u *BrandUpdateOne) SetMainChallenges(v string) *BrandUpdateOne {
	_u.mutation.SetMainChallenges(v)
	return _u
}

// SetNillableMainChallenges sets the "main_challenges" field if the given value is not nil.
func (_u *BrandUpdateOne) SetNillableMainChallenges(v *string) *BrandUpdateOne {
	if v != nil {
		_u.SetMainChallenges(*v)
	}
	return _u
}

// ClearMainChallenges clears the value of the "main_challenges" field.
func (_u *BrandUpdateOne) ClearMainChallenges() *BrandUpdateOne {
	_u.mutation.ClearMainChallenges()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BrandUpdateOne) SetUpdatedAt(v time.Time) *BrandUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BrandMutation object of the builder.
func (_u *BrandUpdateOne) Mutation() *BrandMutation {
	return _u.mutation
}

// Where appends a list predicates to the BrandUpdate builder.
func (_u *BrandUpdateOne) Where(ps ...predicate.Brand) *BrandUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BrandUpdateOne) Select(field string, fields ...string) *BrandUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Brand entity.
func (_u *BrandUpdateOne) Save(ctx context.Context) (*Brand, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BrandUpdateOne) SaveX(ctx context.Context) *Brand {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BrandUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BrandUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BrandUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := brand.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BrandUpdateOne) check() error {
	if v, ok := _u.mutation.BrandName(); ok {
		if err := brand.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`ent: validator failed for field "Brand.brand_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessModel(); ok {
		if err := brand.BusinessModelValidator(v); err != nil {
			return &ValidationError{Name: "business_model", err: fmt.Errorf(`ent: validator failed for field "Brand.business_model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceRange(); ok {
		if err := brand.PriceRangeValidator(v); err != nil {
			return &ValidationError{Name: "price_range", err: fmt.Errorf(`ent: validator failed for field "Brand.price_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetAudience(); ok {
		if err := brand.TargetAudienceValidator(v); err != nil {
			return &ValidationError{Name: "target_audience", err: fmt.Errorf(`ent: validator failed for field "Brand.target_audience": %w`, err)}
		}
	}
	return nil
}

func (_u *BrandUpdateOne) sqlSave(ctx context.Context) (_node *Brand, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(brand.Table, brand.Columns, sqlgraph.NewFieldSpec(brand.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Brand.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, brand.FieldID)
		for _, f := range fields {
			if !brand.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != brand.FieldID {
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
		_spec.SetField(brand.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProfileID(); ok {
		_spec.AddField(brand.FieldProfileID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(brand.FieldBrandName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessModel(); ok {
		_spec.SetField(brand.FieldBusinessModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceRange(); ok {
		_spec.SetField(brand.FieldPriceRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(brand.FieldTargetAudience, field.TypeString, value)
	}
	if value, ok := _u.mutation.MainChallenges(); ok {
		_spec.SetField(brand.FieldMainChallenges, field.TypeString, value)
	}
	if _u.mutation.MainChallengesCleared() {
		_spec.ClearField(brand.FieldMainChallenges, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(brand.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Brand{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{brand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
