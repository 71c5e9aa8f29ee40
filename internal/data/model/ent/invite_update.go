// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fforecasting/server/internal/data/model/ent/invite"
	"fforecasting/server/internal/data/model/ent/predicate"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InviteUpdate is the builder for updating Invite entities.
type InviteUpdate struct {
	config
	hooks    []Hook
	mutation *InviteMutation
}

// Where appends a list predicates to the InviteUpdate builder.
func (_u *InviteUpdate) Where(ps ...predicate.Invite) *InviteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *InviteUpdate) SetCode(v string) *InviteUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *InviteUpdate) SetNillableCode(v *string) *InviteUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *InviteUpdate) SetBrandName(v string) *InviteUpdate {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *InviteUpdate) SetNillableBrandName(v *string) *InviteUpdate {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// SetBrandEmail sets the "brand_email" field.
func (_u *InviteUpdate) SetBrandEmail(v string) *InviteUpdate {
	_u.mutation.SetBrandEmail(v)
	return _u
}

// SetNillableBrandEmail sets the "brand_email" field if the given value is not nil.
func (_u *InviteUpdate) SetNillableBrandEmail(v *string) *InviteUpdate {
	if v != nil {
		_u.SetBrandEmail(*v)
	}
	return _u
}

// SetStylistID sets the "stylist_id" field.
func (_u *InviteUpdate) SetStylistID(v int) *InviteUpdate {
	_u.mutation.ResetStylistID()
	_u.mutation.SetStylistID(v)
	return _u
}

// SetNillableStylistID sets the "stylist_id" field if the given value is not nil.
func (_u *InviteUpdate) SetNillableStylistID(v *int) *InviteUpdate {
	if v != nil {
		_u.SetStylistID(*v)
	}
	return _u
}

// AddStylistID adds value to the "stylist_id" field.
func (_u *InviteUpdate) AddStylistID(v int) *InviteUpdate {
	_u.mutation.AddStylistID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InviteUpdate) SetStatus(v invite.Status) *InviteUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InviteUpdate) SetNillableStatus(v *invite.Status) *InviteUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBrandID sets the "brand_id" field.
func (_u *InviteUpdate) SetBrandID(v int) *InviteUpdate {
	_u.mutation.ResetBrandID()
	_u.mutation.SetBrandID(v)
	return _u
}

// SetNillableBrandID sets the "brand_id" field if the given value is not nil.
func (_u *InviteUpdate) SetNillableBrandID(v *int) *InviteUpdate {
	if v != nil {
		_u.SetBrandID(*v)
	}
	return _u
}

// AddBrandID adds value to the "brand_id" field.
func (_u *InviteUpdate) AddBrandID(v int) *InviteUpdate {
	_u.mutation.AddBrandID(v)
	return _u
}

// ClearBrandID clears the value of the "brand_id" field.
func (_u *InviteUpdate) ClearBrandID() *InviteUpdate {
	_u.mutation.ClearBrandID()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *InviteUpdate) SetExpiresAt(v time.Time) *InviteUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *InviteUpdate) SetNillableExpiresAt(v *time.Time) *InviteUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InviteUpdate) SetUpdatedAt(v time.Time) *InviteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InviteMutation object of the builder.
func (_u *InviteUpdate) Mutation() *InviteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InviteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InviteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InviteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InviteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InviteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invite.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InviteUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := invite.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Invite.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandName(); ok {
		if err := invite.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`ent: validator failed for field "Invite.brand_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandEmail(); ok {
		if err := invite.BrandEmailValidator(v); err != nil {
			return &ValidationError{Name: "brand_email", err: fmt.Errorf(`ent: validator failed for field "Invite.brand_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invite.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invite.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InviteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invite.Table, invite.Columns, sqlgraph.NewFieldSpec(invite.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(invite.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(invite.FieldBrandName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BrandEmail(); ok {
		_spec.SetField(invite.FieldBrandEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.StylistID(); ok {
		_spec.SetField(invite.FieldStylistID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStylistID(); ok {
		_spec.AddField(invite.FieldStylistID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invite.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BrandID(); ok {
		_spec.SetField(invite.FieldBrandID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBrandID(); ok {
		_spec.AddField(invite.FieldBrandID, field.TypeInt, value)
	}
	if _u.mutation.BrandIDCleared() {
		_spec.ClearField(invite.FieldBrandID, field.TypeInt)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(invite.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invite.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InviteUpdateOne is the builder for updating a single Invite entity.
type InviteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InviteMutation
}

// SetCode sets the "code" field.
func (_u *InviteUpdateOne) SetCode(v string) *InviteUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *InviteUpdateOne) SetNillableCode(v *string) *InviteUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetBrandName sets the "brand_name" field.
func (_u *InviteUpdateOne) SetBrandName(v string) *InviteUpdateOne {
	_u.mutation.SetBrandName(v)
	return _u
}

// SetNillableBrandName sets the "brand_name" field if the given value is not nil.
func (_u *InviteUpdateOne) SetNillableBrandName(v *string) *InviteUpdateOne {
	if v != nil {
		_u.SetBrandName(*v)
	}
	return _u
}

// SetBrandEmail sets the "brand_email" field.
func (_u *InviteUpdateOne) SetBrandEmail(v string) *InviteUpdateOne {
	_u.mutation.SetBrandEmail(v)
	return _u
}

// SetNillableBrandEmail sets the "brand_email" field if the given value is not nil.
func (_u *InviteUpdateOne) SetNillableBrandEmail(v *string) *InviteUpdateOne {
	if v != nil {
		_u.SetBrandEmail(*v)
	}
	return _u
}

// SetStylistID sets the "stylist_id" field.
func (_u *InviteUpdateOne) SetStylistID(v int) *InviteUpdateOne {
	_u.mutation.ResetStylistID()
	_u.mutation.SetStylistID(v)
	return _u
}

// SetNillableStylistID sets the "stylist_id" field if the given value is not nil.
func (_u *InviteUpdateOne) SetNillableStylistID(v *int) *InviteUpdateOne {
	if v != nil {
		_u.SetStylistID(*v)
	}
	return _u
}

// AddStylistID adds value to the "stylist_id" field.
func (_u *InviteUpdateOne) AddStylistID(v int) *InviteUpdateOne {
	_u.mutation.AddStylistID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InviteUpdateOne) SetStatus(v invite.Status) *InviteUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InviteUpdateOne) SetNillableStatus(v *invite.Status) *InviteUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBrandID sets the "brand_id" field.
func (_u *InviteUpdateOne) SetBrandID(v int) *InviteUpdateOne {
	_u.mutation.ResetBrandID()
	_u.mutation.SetBrandID(v)
	return _u
}

// SetNillableBrandID sets the "brand_id" field if the given value is not nil.
func (_u *InviteUpdateOne) SetNillableBrandID(v *int) *InviteUpdateOne {
	if v != nil {
		_u.SetBrandID(*v)
	}
	return _u
}

// AddBrandID adds value to the "brand_id" field.
func (_u *InviteUpdateOne) AddBrandID(v int) *InviteUpdateOne {
	_u.mutation.AddBrandID(v)
	return _u
}

// ClearBrandID clears the value of the "brand_id" field.
func (_u *InviteUpdateOne) ClearBrandID() *InviteUpdateOne {
	_u.mutation.ClearBrandID()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *InviteUpdateOne) SetExpiresAt(v time.Time) *InviteUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *InviteUpdateOne) SetNillableExpiresAt(v *time.Time) *InviteUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InviteUpdateOne) SetUpdatedAt(v time.Time) *InviteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InviteMutation object of the builder.
func (_u *InviteUpdateOne) Mutation() *InviteMutation {
	return _u.mutation
}

// Where appends a list predicates to the InviteUpdate builder.
func (_u *InviteUpdateOne) Where(ps ...predicate.Invite) *InviteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InviteUpdateOne) Select(field string, fields ...string) *InviteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invite entity.
func (_u *InviteUpdateOne) Save(ctx context.Context) (*Invite, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InviteUpdateOne) SaveX(ctx context.Context) *Invite {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InviteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InviteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InviteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invite.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InviteUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := invite.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Invite.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandName(); ok {
		if err := invite.BrandNameValidator(v); err != nil {
			return &ValidationError{Name: "brand_name", err: fmt.Errorf(`ent: validator failed for field "Invite.brand_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandEmail(); ok {
		if err := invite.BrandEmailValidator(v); err != nil {
			return &ValidationError{Name: "brand_email", err: fmt.Errorf(`ent: validator failed for field "Invite.brand_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invite.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invite.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InviteUpdateOne) sqlSave(ctx context.Context) (_node *Invite, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invite.Table, invite.Columns, sqlgraph.NewFieldSpec(invite.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invite.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invite.FieldID)
		for _, f := range fields {
			if !invite.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invite.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(invite.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.BrandName(); ok {
		_spec.SetField(invite.FieldBrandName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BrandEmail(); ok {
		_spec.SetField(invite.FieldBrandEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.StylistID(); ok {
		_spec.SetField(invite.FieldStylistID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStylistID(); ok {
		_spec.AddField(invite.FieldStylistID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invite.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BrandID(); ok {
		_spec.SetField(invite.FieldBrandID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBrandID(); ok {
		_spec.AddField(invite.FieldBrandID, field.TypeInt, value)
	}
	if _u.mutation.BrandIDCleared() {
		_spec.ClearField(invite.FieldBrandID, field.TypeInt)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(invite.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invite.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Invite{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
