// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mbalogun/invoice-pipeline/gen/ent/matchhistory"
	"github.com/mbalogun/invoice-pipeline/gen/ent/predicate"
	"github.com/mbalogun/invoice-pipeline/gen/ent/product"
	"github.com/mbalogun/invoice-pipeline/gen/ent/tenant"
)

// MatchHistoryUpdate is the builder for updating MatchHistory entities.
type MatchHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *MatchHistoryMutation
}

// Where appends a list predicates to the MatchHistoryUpdate builder.
func (_u *MatchHistoryUpdate) Where(ps ...predicate.MatchHistory) *MatchHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *MatchHistoryUpdate) SetTenantID(v uuid.UUID) *MatchHistoryUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *MatchHistoryUpdate) SetNillableTenantID(v *uuid.UUID) *MatchHistoryUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *MatchHistoryUpdate) SetVendorID(v uuid.UUID) *MatchHistoryUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *MatchHistoryUpdate) SetNillableVendorID(v *uuid.UUID) *MatchHistoryUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *MatchHistoryUpdate) SetProductID(v uuid.UUID) *MatchHistoryUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *MatchHistoryUpdate) SetNillableProductID(v *uuid.UUID) *MatchHistoryUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetVendorSku sets the "vendor_sku" field.
func (_u *MatchHistoryUpdate) SetVendorSku(v string) *MatchHistoryUpdate {
	_u.mutation.SetVendorSku(v)
	return _u
}

// SetNillableVendorSku sets the "vendor_sku" field if the given value is not nil.
func (_u *MatchHistoryUpdate) SetNillableVendorSku(v *string) *MatchHistoryUpdate {
	if v != nil {
		_u.SetVendorSku(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MatchHistoryUpdate) SetDescription(v string) *MatchHistoryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MatchHistoryUpdate) SetNillableDescription(v *string) *MatchHistoryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MatchHistoryUpdate) ClearDescription() *MatchHistoryUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMethod sets the "method" field.
func (_u *MatchHistoryUpdate) SetMethod(v string) *MatchHistoryUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *MatchHistoryUpdate) SetNillableMethod(v *string) *MatchHistoryUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MatchHistoryUpdate) SetConfidence(v float64) *MatchHistoryUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MatchHistoryUpdate) SetNillableConfidence(v *float64) *MatchHistoryUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MatchHistoryUpdate) AddConfidence(v float64) *MatchHistoryUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetConfirmed sets the "confirmed" field.
func (_u *MatchHistoryUpdate) SetConfirmed(v bool) *MatchHistoryUpdate {
	_u.mutation.SetConfirmed(v)
	return _u
}

// SetNillableConfirmed sets the "confirmed" field if the given value is not nil.
func (_u *MatchHistoryUpdate) SetNillableConfirmed(v *bool) *MatchHistoryUpdate {
	if v != nil {
		_u.SetConfirmed(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MatchHistoryUpdate) SetCreatedAt(v time.Time) *MatchHistoryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MatchHistoryUpdate) SetNillableCreatedAt(v *time.Time) *MatchHistoryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_u *MatchHistoryUpdate) SetTenant(v *Tenant) *MatchHistoryUpdate {
	return _u.SetTenantID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *MatchHistoryUpdate) SetProduct(v *Product) *MatchHistoryUpdate {
	return _u.SetProductID(v.ID)
}

// Mutation returns the MatchHistoryMutation object of the builder.
func (_u *MatchHistoryUpdate) Mutation() *MatchHistoryMutation {
	return _u.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (_u *MatchHistoryUpdate) ClearTenant() *MatchHistoryUpdate {
	_u.mutation.ClearTenant()
	return _u
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *MatchHistoryUpdate) ClearProduct() *MatchHistoryUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchHistoryUpdate) check() error {
	if v, ok := _u.mutation.VendorSku(); ok {
		if err := matchhistory.VendorSkuValidator(v); err != nil {
			return &ValidationError{Name: "vendor_sku", err: fmt.Errorf(`ent: validator failed for field "MatchHistory.vendor_sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := matchhistory.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "MatchHistory.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := matchhistory.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MatchHistory.confidence": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchHistory.tenant"`)
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchHistory.product"`)
	}
	return nil
}

func (_u *MatchHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchhistory.Table, matchhistory.Columns, sqlgraph.NewFieldSpec(matchhistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(matchhistory.FieldVendorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorSku(); ok {
		_spec.SetField(matchhistory.FieldVendorSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(matchhistory.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(matchhistory.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(matchhistory.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(matchhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(matchhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confirmed(); ok {
		_spec.SetField(matchhistory.FieldConfirmed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(matchhistory.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.TenantTable,
			Columns: []string{matchhistory.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.TenantTable,
			Columns: []string{matchhistory.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.ProductTable,
			Columns: []string{matchhistory.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.ProductTable,
			Columns: []string{matchhistory.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchHistoryUpdateOne is the builder for updating a single MatchHistory entity.
type MatchHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchHistoryMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *MatchHistoryUpdateOne) SetTenantID(v uuid.UUID) *MatchHistoryUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *MatchHistoryUpdateOne) SetNillableTenantID(v *uuid.UUID) *MatchHistoryUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *MatchHistoryUpdateOne) SetVendorID(v uuid.UUID) *MatchHistoryUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *MatchHistoryUpdateOne) SetNillableVendorID(v *uuid.UUID) *MatchHistoryUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *MatchHistoryUpdateOne) SetProductID(v uuid.UUID) *MatchHistoryUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *MatchHistoryUpdateOne) SetNillableProductID(v *uuid.UUID) *MatchHistoryUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetVendorSku sets the "vendor_sku" field.
func (_u *MatchHistoryUpdateOne) SetVendorSku(v string) *MatchHistoryUpdateOne {
	_u.mutation.SetVendorSku(v)
	return _u
}

// SetNillableVendorSku sets the "vendor_sku" field if the given value is not nil.
func (_u *MatchHistoryUpdateOne) SetNillableVendorSku(v *string) *MatchHistoryUpdateOne {
	if v != nil {
		_u.SetVendorSku(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MatchHistoryUpdateOne) SetDescription(v string) *MatchHistoryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MatchHistoryUpdateOne) SetNillableDescription(v *string) *MatchHistoryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MatchHistoryUpdateOne) ClearDescription() *MatchHistoryUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMethod sets the "method" field.
func (_u *MatchHistoryUpdateOne) SetMethod(v string) *MatchHistoryUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *MatchHistoryUpdateOne) SetNillableMethod(v *string) *MatchHistoryUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MatchHistoryUpdateOne) SetConfidence(v float64) *MatchHistoryUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MatchHistoryUpdateOne) SetNillableConfidence(v *float64) *MatchHistoryUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MatchHistoryUpdateOne) AddConfidence(v float64) *MatchHistoryUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetConfirmed sets the "confirmed" field.
func (_u *MatchHistoryUpdateOne) SetConfirmed(v bool) *MatchHistoryUpdateOne {
	_u.mutation.SetConfirmed(v)
	return _u
}

// SetNillableConfirmed sets the "confirmed" field if the given value is not nil.
func (_u *MatchHistoryUpdateOne) SetNillableConfirmed(v *bool) *MatchHistoryUpdateOne {
	if v != nil {
		_u.SetConfirmed(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MatchHistoryUpdateOne) SetCreatedAt(v time.Time) *MatchHistoryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MatchHistoryUpdateOne) SetNillableCreatedAt(v *time.Time) *MatchHistoryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_u *MatchHistoryUpdateOne) SetTenant(v *Tenant) *MatchHistoryUpdateOne {
	return _u.SetTenantID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *MatchHistoryUpdateOne) SetProduct(v *Product) *MatchHistoryUpdateOne {
	return _u.SetProductID(v.ID)
}

// Mutation returns the MatchHistoryMutation object of the builder.
func (_u *MatchHistoryUpdateOne) Mutation() *MatchHistoryMutation {
	return _u.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (_u *MatchHistoryUpdateOne) ClearTenant() *MatchHistoryUpdateOne {
	_u.mutation.ClearTenant()
	return _u
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *MatchHistoryUpdateOne) ClearProduct() *MatchHistoryUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// Where appends a list predicates to the MatchHistoryUpdate builder.
func (_u *MatchHistoryUpdateOne) Where(ps ...predicate.MatchHistory) *MatchHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchHistoryUpdateOne) Select(field string, fields ...string) *MatchHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatchHistory entity.
func (_u *MatchHistoryUpdateOne) Save(ctx context.Context) (*MatchHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchHistoryUpdateOne) SaveX(ctx context.Context) *MatchHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.VendorSku(); ok {
		if err := matchhistory.VendorSkuValidator(v); err != nil {
			return &ValidationError{Name: "vendor_sku", err: fmt.Errorf(`ent: validator failed for field "MatchHistory.vendor_sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := matchhistory.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "MatchHistory.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := matchhistory.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MatchHistory.confidence": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchHistory.tenant"`)
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchHistory.product"`)
	}
	return nil
}

func (_u *MatchHistoryUpdateOne) sqlSave(ctx context.Context) (_node *MatchHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchhistory.Table, matchhistory.Columns, sqlgraph.NewFieldSpec(matchhistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MatchHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matchhistory.FieldID)
		for _, f := range fields {
			if !matchhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matchhistory.FieldID {
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
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(matchhistory.FieldVendorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorSku(); ok {
		_spec.SetField(matchhistory.FieldVendorSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(matchhistory.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(matchhistory.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(matchhistory.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(matchhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(matchhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confirmed(); ok {
		_spec.SetField(matchhistory.FieldConfirmed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(matchhistory.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TenantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.TenantTable,
			Columns: []string{matchhistory.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.TenantTable,
			Columns: []string{matchhistory.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.ProductTable,
			Columns: []string{matchhistory.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.ProductTable,
			Columns: []string{matchhistory.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MatchHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
