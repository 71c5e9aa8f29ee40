// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fforecasting/server/internal/data/model/ent/stylist"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// StylistCreate is the builder for creating a Stylist entity.
type StylistCreate struct {
	config
	mutation *StylistMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *StylistCreate) SetProfileID(v int) *StylistCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetExperience sets the "experience" field.
func (_c *StylistCreate) SetExperience(v string) *StylistCreate {
	_c.mutation.SetExperience(v)
	return _c
}

// SetPortfolioURL sets the "portfolio_url" field.
func (_c *StylistCreate) SetPortfolioURL(v string) *StylistCreate {
	_c.mutation.SetPortfolioURL(v)
	return _c
}

// SetNillablePortfolioURL sets the "portfolio_url" field if the given value is not nil.
func (_c *StylistCreate) SetNillablePortfolioURL(v *string) *StylistCreate {
	if v != nil {
		_c.SetPortfolioURL(*v)
	}
	return _c
}

// SetSpecialties sets the "specialties" field.
func (_c *StylistCreate) SetSpecialties(v []string) *StylistCreate {
	_c.mutation.SetSpecialties(v)
	return _c
}

// SetPremiumAccess sets the "premium_access" field.
func (_c *StylistCreate) SetPremiumAccess(v bool) *StylistCreate {
	_c.mutation.SetPremiumAccess(v)
	return _c
}

// SetNillablePremiumAccess sets the "premium_access" field if the given value is not nil.
func (_c *StylistCreate) SetNillablePremiumAccess(v *bool) *StylistCreate {
	if v != nil {
		_c.SetPremiumAccess(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StylistCreate) SetCreatedAt(v time.Time) *StylistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StylistCreate) SetNillableCreatedAt(v *time.Time) *StylistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StylistCreate) SetUpdatedAt(v time.Time) *StylistCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StylistCreate) SetNillableUpdatedAt(v *time.Time) *StylistCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StylistMutation object of the builder.
func (_c *StylistCreate) Mutation() *StylistMutation {
	return _c.mutation
}

// Save creates the Stylist in the database.
func (_c *StylistCreate) Save(ctx context.Context) (*Stylist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StylistCreate) SaveX(ctx context.Context) *Stylist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StylistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StylistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StylistCreate) defaults() {
	if _, ok := _c.mutation.PremiumAccess(); !ok {
		v := stylist.DefaultPremiumAccess
		_c.mutation.SetPremiumAccess(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stylist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stylist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StylistCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Stylist.profile_id"`)}
	}
	if _, ok := _c.mutation.Experience(); !ok {
		return &ValidationError{Name: "experience", err: errors.New(`ent: missing required field "Stylist.experience"`)}
	}
	if v, ok := _c.mutation.Experience(); ok {
		if err := stylist.ExperienceValidator(v); err != nil {
			return &ValidationError{Name: "experience", err: fmt.Errorf(`ent: validator failed for field "Stylist.experience": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PortfolioURL(); ok {
		if err := stylist.PortfolioURLValidator(v); err != nil {
			return &ValidationError{Name: "portfolio_url", err: fmt.Errorf(`ent: validator failed for field "Stylist.portfolio_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PremiumAccess(); !ok {
		return &ValidationError{Name: "premium_access", err: errors.New(`ent: missing required field "Stylist.premium_access"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Stylist.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Stylist.updated_at"`)}
	}
	return nil
}

func (_c *StylistCreate) sqlSave(ctx context.Context) (*Stylist, error) {
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

func (_c *StylistCreate) createSpec() (*Stylist, *sqlgraph.CreateSpec) {
	var (
		_node = &Stylist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stylist.Table, sqlgraph.NewFieldSpec(stylist.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(stylist.FieldProfileID, field.TypeInt, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.Experience(); ok {
		_spec.SetField(stylist.FieldExperience, field.TypeString, value)
		_node.Experience = value
	}
	if value, ok := _c.mutation.PortfolioURL(); ok {
		_spec.SetField(stylist.FieldPortfolioURL, field.TypeString, value)
		_node.PortfolioURL = value
	}
	if value, ok := _c.mutation.Specialties(); ok {
		_spec.SetField(stylist.FieldSpecialties, field.TypeJSON, value)
		_node.Specialties = value
	}
	if value, ok := _c.mutation.PremiumAccess(); ok {
		_spec.SetField(stylist.FieldPremiumAccess, field.TypeBool, value)
		_node.PremiumAccess = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stylist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stylist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StylistCreateBulk is the builder for creating many Stylist entities in bulk.
type StylistCreateBulk struct {
	config
	err      error
	builders []*StylistCreate
}

// Save creates the Stylist entities in the database.
func (_c *StylistCreateBulk) Save(ctx context.Context) ([]*Stylist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Stylist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StylistMutation)
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
func (_c *StylistCreateBulk) SaveX(ctx context.Context) []*Stylist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StylistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StylistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
