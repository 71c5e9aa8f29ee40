// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fforecasting/server/internal/data/model/ent/brand"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// BrandCreate is the builder for creating a Brand entity.
type BrandCreate struct {
	config
	mutation *BrandMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *BrandCreate) SetProfileID(v int) *BrandCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetBrandName sets the "brand_name" field.
func (_c *BrandCreate) SetBrandName(v string) *BrandCreate {
	_c.mutation.SetBrandName(v)
	return _c
}

// SetBusinessModel sets the "business_model" field.
func (_c *BrandCreate) SetBusinessModel(v string) *BrandCreate {
	_c.mutation.SetBusinessModel(v)
	return _c
}

// SetPriceRange sets the "price_range" field.
func (_c *BrandCreate) SetPriceRange(v string) *BrandCreate {
	_c.mutation.SetPriceRange(v)
	return _c
}

// SetTargetAudience sets the "target_audience" field.
func (_c *BrandCreate) SetTargetAudience(v string) *BrandCreate {
	_c.mutation.SetTargetAudience(v)
	return _c
}

// SetMainChallenges sets the "main_challenges" field.
func (_c *BrandCreate) SetMainChallenges(v string) *BrandCreate {
	_c.mutation.SetMainChallenges(v)
	return _c
}

// SetNillableMainChallenges sets the "main_challenges" field if the given value is not nil.
func (_c *BrandCreate) SetNillableMainChallenges(v *string) *BrandCreate {
	if v != nil {
		_c.SetMainChallenges(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BrandCreate) SetCreatedAt(v time.Time) *BrandCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BrandCreate) SetNillableCreatedAt(v *time.Time) *BrandCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BrandCreate) SetUpdatedAt(v time.Time) *BrandCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BrandCreate) SetNillableUpdatedAt(v *time.Time) *BrandCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the BrandMutation object of the builder.
func (_c *BrandCreate) Mutation() *BrandMutation {
	return _c.mutation
}

// Save creates the Brand in the database.
func (_c *BrandCreate) Save(ctx context.Context) (*Brand, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BrandCreate) SaveX(ctx context.Context) *Brand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrandCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrandCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BrandCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := brand.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := brand.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BrandCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Brand.profile_id"`)}
	}
	if _, ok := _c.mutation.BrandName(); !ok {
		return &ValidationError{Name: "brand_name", err: errors.New(`ent: missing required field "Brand.brand_name"`)}
	}
	if v, ok := _c.mutation.BrandName(); ok {
		if err := brand.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`ent: validator failed for field "Brand.brand_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BusinessModel(); !ok {
		return &ValidationError{Name: "business_model", err: errors.New(`ent: missing required field "Brand.business_model"`)}
	}
	if v, ok := _c.mutation.BusinessModel(); ok {
		if err := brand.BusinessModelValidator(v); err != nil {
			return &ValidationError{Name: "business_model", err: fmt.Errorf(`ent: validator failed for field "Brand.business_model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriceRange(); !ok {
		return &ValidationError{Name: "price_range", err: errors.New(`ent: missing required field "Brand.price_range"`)}
	}
	if v, ok := _c.mutation.PriceRange(); ok {
		if err := brand.PriceRangeValidator(v); err != nil {
			return &ValidationError{Name: "price_range", err: fmt.Errorf(`ent: validator failed for field "Brand.price_range": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetAudience(); !ok {
		return &ValidationError{Name: "target_audience", err: errors.New(`ent: missing required field "Brand.target_audience"`)}
	}
	if v, ok := _c.mutation.TargetAudience(); ok {
		if err := brand.TargetAudienceValidator(v); err != nil {
			return &ValidationError{Name: "target_audience", err: fmt.Errorf(`ent: validator failed for field "Brand.target_audience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Brand.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Brand.updated_at"`)}
	}
	return nil
}

func (_c *BrandCreate) sqlSave(ctx context.Context) (*Brand, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BrandCreate) createSpec() (*Brand, *sqlgraph.CreateSpec) {
	var (
		_node = &Brand{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(brand.Table, sqlgraph.NewFieldSpec(brand.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(brand.FieldProfileID, field.TypeInt, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.BrandName(); ok {
		_spec.SetField(brand.FieldBrandName, field.TypeString, value)
		_node.BrandName = value
	}
	if value, ok := _c.mutation.BusinessModel(); ok {
		_spec.SetField(brand.FieldBusinessModel, field.TypeString, value)
		_node.BusinessModel = value
	}
	if value, ok := _c.mutation.PriceRange(); ok {
		_spec.SetField(brand.FieldPriceRange, field.TypeString, value)
		_node.PriceRange = value
	}
	if value, ok := _c.mutation.TargetAudience(); ok {
		_spec.SetField(brand.FieldTargetAudience, field.TypeString, value)
		_node.TargetAudience = value
	}
	if value, ok := _c.mutation.MainChallenges(); ok {
		_spec.SetField(brand.FieldMainChallenges, field.TypeString, value)
		_node.MainChallenges = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(brand.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(brand.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BrandCreateBulk is the builder for creating many Brand entities in bulk.
type BrandCreateBulk struct {
	config
	err      error
	builders []*BrandCreate
}

// Save creates the Brand entities in the database.
func (_c *BrandCreateBulk) Save(ctx context.Context) ([]*Brand, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Brand, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BrandMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BrandCreateBulk) SaveX(ctx context.Context) []*Brand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BrandCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BrandCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
