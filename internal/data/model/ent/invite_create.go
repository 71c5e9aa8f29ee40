// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fforecasting/server/internal/data/model/ent/invite"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InviteCreate is the builder for creating a Invite entity.
type InviteCreate struct {
	config
	mutation *InviteMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *InviteCreate) SetCode(v string) *InviteCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetBrandName sets the "brand_name" field.
func (_c *InviteCreate) SetBrandName(v string) *InviteCreate {
	_c.mutation.SetBrandName(v)
	return _c
}

// SetBrandEmail sets the "brand_email" field.
func (_c *InviteCreate) SetBrandEmail(v string) *InviteCreate {
	_c.mutation.SetBrandEmail(v)
	return _c
}

// SetStylistID sets the "stylist_id" field.
func (_c *InviteCreate) SetStylistID(v int) *InviteCreate {
	_c.mutation.SetStylistID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InviteCreate) SetStatus(v invite.Status) *InviteCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InviteCreate) SetNillableStatus(v *invite.Status) *InviteCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBrandID sets the "brand_id" field.
func (_c *InviteCreate) SetBrandID(v int) *InviteCreate {
	_c.mutation.SetBrandID(v)
	return _c
}

// SetNillableBrandID sets the "brand_id" field if the given value is not nil.
func (_c *InviteCreate) SetNillableBrandID(v *int) *InviteCreate {
	if v != nil {
		_c.SetBrandID(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *InviteCreate) SetExpiresAt(v time.Time) *InviteCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InviteCreate) SetCreatedAt(v time.Time) *InviteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InviteCreate) SetNillableCreatedAt(v *time.Time) *InviteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InviteCreate) SetUpdatedAt(v time.Time) *InviteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InviteCreate) SetNillableUpdatedAt(v *time.Time) *InviteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the InviteMutation object of the builder.
func (_c *InviteCreate) Mutation() *InviteMutation {
	return _c.mutation
}

// Save creates the Invite in the database.
func (_c *InviteCreate) Save(ctx context.Context) (*Invite, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InviteCreate) SaveX(ctx context.Context) *Invite {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InviteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InviteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InviteCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := invite.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invite.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invite.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InviteCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Invite.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := invite.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Invite.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BrandName(); !ok {
		return &ValidationError{Name: "brand_name", err: errors.New(`ent: missing required field "Invite.brand_name"`)}
	}
	if v, ok := _c.mutation.BrandName(); ok {
		if err := invite.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`ent: validator failed for field "Invite.brand_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BrandEmail(); !ok {
		return &ValidationError{Name: "brand_email", err: errors.New(`ent: missing required field "Invite.brand_email"`)}
	}
	if v, ok := _c.mutation.BrandEmail(); ok {
		if err := invite.BrandEmailValidator(v); err != nil {
			return &ValidationError{Name: "brand_email", err: fmt.Errorf(`ent: validator failed for field "Invite.brand_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StylistID(); !ok {
		return &ValidationError{Name: "stylist_id", err: errors.New(`ent: missing required field "Invite.stylist_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invite.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := invite.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invite.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Invite.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invite.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invite.updated_at"`)}
	}
	return nil
}

func (_c *InviteCreate) sqlSave(ctx context.Context) (*Invite, error) {
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

func (_c *InviteCreate) createSpec() (*Invite, *sqlgraph.CreateSpec) {
	var (
		_node = &Invite{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invite.Table, sqlgraph.NewFieldSpec(invite.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(invite.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.BrandName(); ok {
		_spec.SetField(invite.FieldBrandName, field.TypeString, value)
		_node.BrandName = value
	}
	if value, ok := _c.mutation.BrandEmail(); ok {
		_spec.SetField(invite.FieldBrandEmail, field.TypeString, value)
		_node.BrandEmail = value
	}
	if value, ok := _c.mutation.StylistID(); ok {
		_spec.SetField(invite.FieldStylistID, field.TypeInt, value)
		_node.StylistID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invite.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BrandID(); ok {
		_spec.SetField(invite.FieldBrandID, field.TypeInt, value)
		_node.BrandID = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(invite.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invite.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invite.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// InviteCreateBulk is the builder for creating many Invite entities in bulk.
type InviteCreateBulk struct {
	config
	err      error
	builders []*InviteCreate
}

// Save creates the Invite entities in the database.
func (_c *InviteCreateBulk) Save(ctx context.Context) ([]*Invite, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invite, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InviteMutation)
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
func (_c *InviteCreateBulk) SaveX(ctx context.Context) []*Invite {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InviteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InviteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
